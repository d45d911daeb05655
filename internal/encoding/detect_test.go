package encoding

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

func decode(t *testing.T, input []byte) string {
	t.Helper()

	r, err := NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	out, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(out)
}

func TestNewUTF8Reader_PlainUTF8(t *testing.T) {
	assert.Equal(t, "Ksh1,500.00 from JOHN", decode(t, []byte("Ksh1,500.00 from JOHN")))
}

func TestNewUTF8Reader_StripsUTF8BOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("<smses count=\"1\"/>")...)
	assert.Equal(t, "<smses count=\"1\"/>", decode(t, input))
}

func TestNewUTF8Reader_UTF16LE(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()

	input, err := enc.Bytes([]byte("M-PESA balance Ksh200"))
	require.NoError(t, err)

	assert.Equal(t, "M-PESA balance Ksh200", decode(t, input))
}

func TestNewUTF8Reader_UTF16BE(t *testing.T) {
	enc := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder()

	input, err := enc.Bytes([]byte("sent to JANE"))
	require.NoError(t, err)

	assert.Equal(t, "sent to JANE", decode(t, input))
}

func TestNewUTF8Reader_Windows1252Fallback(t *testing.T) {
	enc := charmap.Windows1252.NewEncoder()

	input, err := enc.Bytes([]byte("café visit – 450"))
	require.NoError(t, err)
	require.False(t, bytes.Equal(input, []byte("café visit – 450")))

	assert.Equal(t, "café visit – 450", decode(t, input))
}

func TestNewUTF8Reader_Empty(t *testing.T) {
	assert.Equal(t, "", decode(t, nil))
}
