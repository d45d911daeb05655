package importer

import (
	"fmt"
	"io"

	"github.com/cashkelli/cashkelli/internal/importer/smsbackup"
	"github.com/cashkelli/cashkelli/internal/sms"
)

type Service struct {
	smsBackupImporter Importer
}

func NewService() *Service {
	return &Service{
		smsBackupImporter: smsbackup.New(),
	}
}

func (s *Service) Import(format Format, r io.Reader, filter Filter) ([]sms.RawMessage, error) {
	var importer Importer

	switch format {
	case FormatSMSBackup:
		importer = s.smsBackupImporter
	default:
		return nil, fmt.Errorf("unknown import format: %s", format)
	}

	msgs, err := importer.Parse(r)
	if err != nil {
		return nil, err
	}

	return filter.Apply(msgs), nil
}
