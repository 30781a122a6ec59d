package telemetry

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gocarina/gocsv"
)

// Seconds is an elapsed time that marshals to CSV with two decimals.
type Seconds float64

// MarshalCSV implements gocsv.TypeMarshaller.
func (s Seconds) MarshalCSV() (string, error) {
	return strconv.FormatFloat(float64(s), 'f', 2, 64), nil
}

// seriesRow is one exported CSV row.
type seriesRow struct {
	Time     Seconds `csv:"time (s)"`
	Rock     int     `csv:"rock"`
	Paper    int     `csv:"paper"`
	Scissors int     `csv:"scissors"`
}

// WriteCSV writes samples as one header row plus one row per sample.
// Times are relative to the first sample.
func WriteCSV(w io.Writer, samples []Sample) error {
	rows := make([]seriesRow, len(samples))
	var start float64
	if len(samples) > 0 {
		start = samples[0].Elapsed
	}
	for i, s := range samples {
		rows[i] = seriesRow{
			Time:     Seconds(s.Elapsed - start),
			Rock:     s.Rock,
			Paper:    s.Paper,
			Scissors: s.Scissors,
		}
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("writing series csv: %w", err)
	}
	return nil
}
