package tabular

import (
	"fmt"
	"io"

	"github.com/chrissnell/wbgt/pkg/wbgt"
)

// Writer emits fixed-width result rows, one per record.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteHeader writes the column label line.
func (t *Writer) WriteHeader() error {
	_, err := fmt.Fprintf(t.w, "%10s %8s %8s %8s %8s %8s %8s %4s\n",
		"day", "speed", "solar", "Tg", "Tnwb", "Tpsy", "Twbg", "ok")
	return err
}

// WriteRow writes one result. day is the fractional day of year of the
// observation in local standard time.
func (t *Writer) WriteRow(day float64, res wbgt.Result) error {
	ok := 0
	if res.Converged {
		ok = 1
	}
	_, err := fmt.Fprintf(t.w, "%10.6f %8.2f %8.2f %8.2f %8.2f %8.2f %8.2f %4d\n",
		day, res.EstimatedSpeed, res.AdjustedSolar,
		res.GlobeTemp, res.NaturalWetBulb, res.PsychroWetBulb, res.WBGT, ok)
	return err
}
