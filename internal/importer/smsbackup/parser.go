// Package smsbackup parses the XML files that Android SMS backup tools
// export. The format is a flat <smses> element holding one <sms> per
// message with the interesting fields in attributes.
package smsbackup

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	enc "github.com/cashkelli/cashkelli/internal/encoding"
	"github.com/cashkelli/cashkelli/internal/sms"
)

// typeInbox is the sms type attribute value for received messages.
// Sent, draft and queued entries carry other values and are skipped
// since only inbound alerts describe money movement.
const typeInbox = "1"

type Parser struct{}

func New() *Parser {
	return &Parser{}
}

type smsElem struct {
	Address string `xml:"address,attr"`
	Date    string `xml:"date,attr"`
	Type    string `xml:"type,attr"`
	Body    string `xml:"body,attr"`
}

func (p *Parser) Parse(r io.Reader) ([]sms.RawMessage, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	dec := xml.NewDecoder(utf8r)
	// Input is already UTF-8; accept whatever the XML declaration claims.
	dec.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}

	var msgs []sms.RawMessage

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read xml: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "sms" {
			continue
		}

		var elem smsElem
		if err := dec.DecodeElement(&elem, &start); err != nil {
			return nil, fmt.Errorf("decode sms element: %w", err)
		}

		msg, ok := toRawMessage(elem)
		if !ok {
			continue
		}

		msgs = append(msgs, msg)
	}

	return msgs, nil
}

// toRawMessage converts one element, rejecting entries that cannot feed
// the sync pipeline: outbound messages, missing senders, bad timestamps.
func toRawMessage(e smsElem) (sms.RawMessage, bool) {
	if e.Type != "" && e.Type != typeInbox {
		return sms.RawMessage{}, false
	}

	sender := strings.TrimSpace(e.Address)
	if sender == "" || strings.TrimSpace(e.Body) == "" {
		return sms.RawMessage{}, false
	}

	millis, err := strconv.ParseInt(strings.TrimSpace(e.Date), 10, 64)
	if err != nil || millis <= 0 {
		return sms.RawMessage{}, false
	}

	return sms.RawMessage{
		Sender:          sender,
		Body:            e.Body,
		TimestampMillis: millis,
	}, true
}
