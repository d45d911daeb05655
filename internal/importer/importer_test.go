package importer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashkelli/cashkelli/internal/sms"
)

func TestFilter_Apply(t *testing.T) {
	msgs := []sms.RawMessage{
		{Sender: "MPESA", Body: "a", TimestampMillis: 1704103200000},
		{Sender: "EQUITY", Body: "b", TimestampMillis: 1704189600000},
		{Sender: "mpesa", Body: "c", TimestampMillis: 1704276000000},
	}

	t.Run("no constraints", func(t *testing.T) {
		assert.Len(t, Filter{}.Apply(msgs), 3)
	})

	t.Run("sender is case-insensitive", func(t *testing.T) {
		got := Filter{Sender: "MPESA"}.Apply(msgs)
		require.Len(t, got, 2)
		assert.Equal(t, "a", got[0].Body)
		assert.Equal(t, "c", got[1].Body)
	})

	t.Run("since cuts older messages", func(t *testing.T) {
		got := Filter{Since: time.UnixMilli(1704189600000).UTC()}.Apply(msgs)
		require.Len(t, got, 2)
		assert.Equal(t, "b", got[0].Body)
	})

	t.Run("max caps the batch", func(t *testing.T) {
		got := Filter{Max: 1}.Apply(msgs)
		require.Len(t, got, 1)
		assert.Equal(t, "a", got[0].Body)
	})
}

func TestService_Import_UnknownFormat(t *testing.T) {
	_, err := NewService().Import(Format("csv"), strings.NewReader(""), Filter{})
	assert.Error(t, err)
}

func TestService_Import_SMSBackup(t *testing.T) {
	input := `<smses count="2">
  <sms address="MPESA" date="1704103200000" type="1" body="one" />
  <sms address="EQUITY" date="1704189600000" type="1" body="two" />
</smses>`

	msgs, err := NewService().Import(FormatSMSBackup, strings.NewReader(input), Filter{Sender: "equity"})
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "EQUITY", msgs[0].Sender)
}
