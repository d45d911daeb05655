package smsbackup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBackup = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<smses count="5" backup_set="abc" backup_date="1704300000000">
  <sms protocol="0" address="MPESA" date="1704103200000" type="1" subject="null" body="QA12BC3D4E Confirmed. You have received Ksh1,500.00 from JOHN DOE on 1/1/24" read="1" />
  <sms protocol="0" address="MPESA" date="1704189600000" type="1" subject="null" body="QX98ZY7W6V Confirmed. Ksh200.00 sent to JANE SMITH on 1/2/24" read="1" />
  <sms protocol="0" address="+254700000001" date="1704189700000" type="2" subject="null" body="On my way" read="1" />
  <sms protocol="0" address="" date="1704189800000" type="1" subject="null" body="orphan body" read="1" />
  <sms protocol="0" address="EQUITY" date="not-a-number" type="1" subject="null" body="Your account has been debited KES 450.00" read="1" />
</smses>`

func TestParser_Parse(t *testing.T) {
	msgs, err := New().Parse(strings.NewReader(sampleBackup))
	require.NoError(t, err)

	// Outbound, senderless and bad-timestamp entries are dropped.
	require.Len(t, msgs, 2)

	assert.Equal(t, "MPESA", msgs[0].Sender)
	assert.Equal(t, int64(1704103200000), msgs[0].TimestampMillis)
	assert.Contains(t, msgs[0].Body, "received Ksh1,500.00")

	assert.Equal(t, int64(1704189600000), msgs[1].TimestampMillis)
	assert.Contains(t, msgs[1].Body, "sent to JANE SMITH")
}

func TestParser_Parse_PreservesOrder(t *testing.T) {
	msgs, err := New().Parse(strings.NewReader(sampleBackup))
	require.NoError(t, err)

	require.Len(t, msgs, 2)
	assert.Less(t, msgs[0].TimestampMillis, msgs[1].TimestampMillis)
}

func TestParser_Parse_DeclaredCharset(t *testing.T) {
	input := `<?xml version="1.0" encoding="windows-1252"?>
<smses count="1">
  <sms address="MPESA" date="1704103200000" type="1" body="plain ascii body" />
</smses>`

	msgs, err := New().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "plain ascii body", msgs[0].Body)
}

func TestParser_Parse_Empty(t *testing.T) {
	msgs, err := New().Parse(strings.NewReader(`<smses count="0"></smses>`))
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestParser_Parse_Malformed(t *testing.T) {
	_, err := New().Parse(strings.NewReader(`<smses><sms address="MPESA"`))
	assert.Error(t, err)
}
