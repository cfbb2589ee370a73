package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVWriter_BOMAndDelimiter(t *testing.T) {
	var buf bytes.Buffer
	w := NewCSVWriter(&buf)

	require.NoError(t, w.WriteRow("Kalem", "Tutar"))
	require.NoError(t, w.WriteRow("Kira", "15000,00"))
	require.NoError(t, w.Flush())

	out := buf.Bytes()
	require.True(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}), "output must start with a UTF-8 BOM")

	lines := strings.Split(strings.TrimSpace(string(out[3:])), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Kalem;Tutar", lines[0])
	assert.Equal(t, "Kira;15000,00", lines[1])
}

func TestCSVWriter_QuotesFieldsContainingDelimiter(t *testing.T) {
	var buf bytes.Buffer
	w := NewCSVWriter(&buf)

	require.NoError(t, w.WriteRow(`Su; Elektrik`, `say "ok"`))
	require.NoError(t, w.Flush())

	out := string(buf.Bytes()[3:])
	assert.Contains(t, out, `"Su; Elektrik"`)
	assert.Contains(t, out, `"say ""ok"""`, "embedded quotes are doubled")
}

func TestAmount_CommaDecimalSeparator(t *testing.T) {
	assert.Equal(t, "15000,00", Amount(15000))
	assert.Equal(t, "1234,57", Amount(1234.567))
	assert.Equal(t, "0,00", Amount(0))
	assert.Equal(t, "-12,50", Amount(-12.5))
}
