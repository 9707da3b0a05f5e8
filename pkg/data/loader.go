package data

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

//go:embed iris.csv
var irisCSV []byte

// Hardcoded column roles of the iris table.
var (
	IrisFeatures = []string{"sepal length (cm)", "sepal width (cm)", "petal length (cm)", "petal width (cm)"}
	IrisTarget   = []string{"target"}
)

var irisClasses = []string{"setosa", "versicolor", "virginica"}

// ReadCSV parses a header-first CSV. Columns named in types get that type,
// everything else is read as float. "", "NA" and "NaN" are missing values.
func ReadCSV(r io.Reader, types map[string]series.Type) (dataframe.DataFrame, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return dataframe.DataFrame{}, errors.New("read csv: no header row")
	}
	header := records[0]
	for i, row := range records[1:] {
		for j, v := range row {
			if v == "" || v == "NA" || v == "NaN" {
				row[j] = "NaN"
				continue
			}
			if err := checkNumeric(v, types[header[j]]); err != nil {
				return dataframe.DataFrame{}, fmt.Errorf("read csv: row %d column %q: %w", i+1, header[j], err)
			}
		}
	}

	df := dataframe.LoadRecords(records,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.Float),
		dataframe.WithTypes(types),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("read csv: %w", df.Err)
	}
	return df, nil
}

// checkNumeric rejects tokens gota would otherwise load as NaN.
// A zero Type means the column takes the float default.
func checkNumeric(v string, t series.Type) error {
	switch t {
	case "", series.Float:
		_, err := strconv.ParseFloat(v, 64)
		return err
	case series.Int:
		_, err := strconv.Atoi(v)
		return err
	}
	return nil
}

// LoadIris returns the embedded iris sample: four numeric features plus a
// categorical "target" column holding the class index of each row.
func LoadIris() (dataframe.DataFrame, error) {
	raw, err := ReadCSV(bytes.NewReader(irisCSV), map[string]series.Type{"species": series.String})
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	index := make(map[string]string, len(irisClasses))
	for i, c := range irisClasses {
		index[c] = strconv.Itoa(i)
	}
	species := raw.Col("species").Records()
	target := make([]string, len(species))
	for i, s := range species {
		t, ok := index[s]
		if !ok {
			return dataframe.DataFrame{}, fmt.Errorf("iris row %d: unknown class %q", i, s)
		}
		target[i] = t
	}

	df := raw.Mutate(series.New(target, series.String, IrisTarget[0])).
		Select(append(append([]string{}, IrisFeatures...), IrisTarget...))
	if df.Err != nil {
		return dataframe.DataFrame{}, df.Err
	}
	return df, nil
}

// Preview returns the first n rows of df, or all of them if it is shorter.
func Preview(df dataframe.DataFrame, n int) dataframe.DataFrame {
	if n > df.Nrow() {
		n = df.Nrow()
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return df.Subset(idx)
}
