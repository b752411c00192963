package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BobbingAlong/twitter-watch/internal/utils"
	"github.com/BobbingAlong/twitter-watch/pkg/records"
)

// forEachRow streams the rows of <base>/data.csv through handle, stopping at
// the first framing error or handler rejection. data.csv has no header row.
func forEachRow(base string, handle func(row []string) error) error {
	path := filepath.Join(base, "data.csv")
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Field counts differ per report kind and are enforced by the record
	// parser, which keeps the raw row for diagnostics.
	r.FieldsPerRecord = -1

	rows := 0
	for {
		row, err := r.Read()
		if err == io.EOF {
			utils.Log.Debug("read ", rows, " rows from ", path)
			return nil
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		rows++
		if err := handle(row); err != nil {
			return err
		}
	}
}

func loadScreenNames(base string) ([]Bucket[records.ScreenNameRecord], error) {
	eng := NewEngine[records.ScreenNameRecord]()
	err := forEachRow(base, func(row []string) error {
		rec, err := records.ParseScreenName(row)
		if err != nil {
			return err
		}
		eng.Add(rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return eng.Finalize(), nil
}

func loadSuspensions(base string) ([]Bucket[records.SuspensionRecord], error) {
	eng := NewEngine[records.SuspensionRecord]()
	err := forEachRow(base, func(row []string) error {
		// A reversal can be detected for an account whose record was never
		// captured; such rows carry a usable detection date and nothing else.
		// They are intercepted before the strict parse and counted per date.
		if records.IsUnknownSuspension(row) {
			day, err := records.UnknownSuspensionDay(row)
			if err != nil {
				return err
			}
			eng.AddUnknown(day)
			return nil
		}
		rec, err := records.ParseSuspension(row)
		if err != nil {
			return err
		}
		eng.Add(rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return eng.Finalize(), nil
}
