// Package export writes report files in the formats the desktop build
// produced. CSV uses a semicolon delimiter and a UTF-8 BOM so the files
// open correctly in Excel with Turkish locale settings.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// utf8BOM makes Excel detect UTF-8 instead of falling back to the
// system codepage.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVWriter writes semicolon-delimited rows with a leading BOM.
type CSVWriter struct {
	w       *csv.Writer
	started bool
	out     io.Writer
}

// NewCSVWriter creates a CSV writer over out. The BOM is written with
// the first row.
func NewCSVWriter(out io.Writer) *CSVWriter {
	w := csv.NewWriter(out)
	w.Comma = ';'
	return &CSVWriter{w: w, out: out}
}

// WriteRow writes one record.
func (c *CSVWriter) WriteRow(fields ...string) error {
	if !c.started {
		if _, err := c.out.Write(utf8BOM); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
		c.started = true
	}
	return c.w.Write(fields)
}

// Flush writes any buffered rows and reports the first error seen.
func (c *CSVWriter) Flush() error {
	c.w.Flush()
	return c.w.Error()
}

// Amount formats a currency amount with two decimals and a comma
// decimal separator, matching the exported reports of the source
// system's locale.
func Amount(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	out := []byte(s)
	for i := range out {
		if out[i] == '.' {
			out[i] = ','
		}
	}
	return string(out)
}
