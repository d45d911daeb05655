package importer

import (
	"io"
	"strings"
	"time"

	"github.com/cashkelli/cashkelli/internal/sms"
)

type Format string

const (
	// FormatSMSBackup is the XML produced by the common Android
	// "SMS Backup & Restore" style export tools.
	FormatSMSBackup Format = "smsbackup"
)

type Importer interface {
	Parse(r io.Reader) ([]sms.RawMessage, error)
}

// Filter narrows an imported batch before it reaches the sync pipeline.
// Zero values mean no constraint.
type Filter struct {
	Sender string
	Since  time.Time
	Max    int
}

// Apply keeps the messages that pass every set constraint, preserving
// input order. Sender matching is case-insensitive.
func (f Filter) Apply(msgs []sms.RawMessage) []sms.RawMessage {
	out := make([]sms.RawMessage, 0, len(msgs))

	for _, m := range msgs {
		if f.Sender != "" && !strings.EqualFold(m.Sender, f.Sender) {
			continue
		}

		if !f.Since.IsZero() && m.TimestampMillis < f.Since.UnixMilli() {
			continue
		}

		out = append(out, m)

		if f.Max > 0 && len(out) >= f.Max {
			break
		}
	}

	return out
}
