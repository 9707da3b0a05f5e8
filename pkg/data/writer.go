package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// WriteCSV writes df to path as comma-separated text: one header row of column
// names, then one line per row, no index column. An existing file is truncated.
// A failure part-way leaves whatever was written.
func WriteCSV(path string, df dataframe.DataFrame) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if err := writeRecords(file, df); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// writeRecords renders floats at full round-trip precision; gota's own
// rendering stops at six decimals. Missing floats are written empty.
func writeRecords(w io.Writer, df dataframe.DataFrame) error {
	names := df.Names()
	cols := make([][]string, len(names))
	for j, name := range names {
		s := df.Col(name)
		if s.Type() != series.Float {
			cols[j] = s.Records()
			continue
		}
		vals := s.Float()
		cols[j] = make([]string, len(vals))
		for i, v := range vals {
			if !math.IsNaN(v) {
				cols[j][i] = strconv.FormatFloat(v, 'g', -1, 64)
			}
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(names); err != nil {
		return err
	}
	row := make([]string, len(names))
	for i := 0; i < df.Nrow(); i++ {
		for j := range cols {
			row[j] = cols[j][i]
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
