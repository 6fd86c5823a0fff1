package importer

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeReader_Windows1252(t *testing.T) {
	// "Grüße" in Windows-1252 bytes.
	raw := "Gr\xfc\xdfe"

	r, err := DecodeReader(strings.NewReader(raw), "windows-1252")
	require.NoError(t, err)

	decoded, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "Grüße", string(decoded))
}

func TestDecodeReader_EmptyCharsetPassthrough(t *testing.T) {
	r, err := DecodeReader(strings.NewReader("plain utf-8"), "")
	require.NoError(t, err)

	decoded, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "plain utf-8", string(decoded))
}

func TestDecodeReader_UnknownCharset(t *testing.T) {
	_, err := DecodeReader(strings.NewReader(""), "ebcdic")
	assert.Error(t, err)
}
