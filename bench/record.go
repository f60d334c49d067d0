package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/goccy/go-json"
)

// Labels of a Record as a map or JSON object.
const (
	LabelLength = "length"
	LabelLinear = "linear"
	LabelBinary = "binary"
)

// Record holds the timings measured for one list length.
type Record struct {
	Length int
	Linear time.Duration
	Binary time.Duration
}

// Map returns the record keyed by label, with durations in seconds.
func (r Record) Map() map[string]float64 {
	return map[string]float64{
		LabelLength: float64(r.Length),
		LabelLinear: r.Linear.Seconds(),
		LabelBinary: r.Binary.Seconds(),
	}
}

type recordJSON struct {
	Length int     `json:"length"`
	Linear float64 `json:"linear"`
	Binary float64 `json:"binary"`
}

// MarshalJSON encodes the record with durations in seconds.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordJSON{
		Length: r.Length,
		Linear: r.Linear.Seconds(),
		Binary: r.Binary.Seconds(),
	})
}

// UnmarshalJSON decodes a record written by MarshalJSON.
func (r *Record) UnmarshalJSON(data []byte) error {
	var v recordJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	r.Length = v.Length
	r.Linear = seconds(v.Linear)
	r.Binary = seconds(v.Binary)
	return nil
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Reporter receives each Record as the harness produces it.
type Reporter interface {
	Report(Record) error
}

// ReporterFunc adapts a function to a Reporter.
type ReporterFunc func(Record) error

func (f ReporterFunc) Report(r Record) error { return f(r) }

// TextReporter writes records in the human-readable console format:
//
//	Testing list of length <n>
//	Linear search: <seconds>
//	Binary search: <seconds>
//
// followed by a blank line.
func TextReporter(w io.Writer) Reporter {
	return ReporterFunc(func(r Record) error {
		_, err := fmt.Fprintf(w, "Testing list of length %d\nLinear search: %v\nBinary search: %v\n\n",
			r.Length, r.Linear.Seconds(), r.Binary.Seconds())
		return err
	})
}

// JSONReporter writes one JSON object per record, one per line.
func JSONReporter(w io.Writer) Reporter {
	enc := json.NewEncoder(w)
	return ReporterFunc(func(r Record) error {
		return enc.Encode(r)
	})
}

// Discard is a Reporter that ignores every record.
var Discard Reporter = ReporterFunc(func(Record) error { return nil })
