package dataprep

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// ErrMissingCategory is returned when a missing value reaches the encoder.
var ErrMissingCategory = errors.New("dataprep: missing value reached the encoder")

// OneHotEncoder expands each categorical column into one 0/1 indicator column
// per distinct category seen during Fit. Categories are kept sorted.
// Values not seen during Fit encode as all zeros.
type OneHotEncoder struct {
	Columns    []string
	Categories [][]string
	index      []map[string]int
}

// NewOneHotEncoder returns an unfitted encoder.
func NewOneHotEncoder() *OneHotEncoder { return &OneHotEncoder{} }

// Fit learns the sorted categories of every column in df.
func (e *OneHotEncoder) Fit(df dataframe.DataFrame) error {
	e.Columns, e.Categories, e.index = nil, nil, nil
	for _, name := range df.Names() {
		s, err := column(df, name)
		if err != nil {
			return err
		}
		if err := noMissing(s); err != nil {
			return err
		}
		unique := map[string]int{}
		for _, v := range s.Records() {
			unique[v]++
		}
		cats := make([]string, 0, len(unique))
		for v := range unique {
			cats = append(cats, v)
		}
		sort.Strings(cats)
		idx := make(map[string]int, len(cats))
		for i, c := range cats {
			idx[c] = i
		}
		e.Columns = append(e.Columns, name)
		e.Categories = append(e.Categories, cats)
		e.index = append(e.index, idx)
	}
	return nil
}

// Transform replaces each fitted column with its indicator columns.
func (e *OneHotEncoder) Transform(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	if err := checkColumns(df, e.Columns); err != nil {
		return dataframe.DataFrame{}, err
	}
	var out []series.Series
	for j, name := range e.Columns {
		s, err := column(df, name)
		if err != nil {
			return dataframe.DataFrame{}, err
		}
		if err := noMissing(s); err != nil {
			return dataframe.DataFrame{}, err
		}
		records := s.Records()
		indicators := make([][]float64, len(e.Categories[j]))
		for k := range indicators {
			indicators[k] = make([]float64, len(records))
		}
		for i, v := range records {
			// unseen category: leave the row all zeros
			if k, ok := e.index[j][v]; ok {
				indicators[k][i] = 1
			}
		}
		for k, cat := range e.Categories[j] {
			out = append(out, series.New(indicators[k], series.Float, featureName(name, cat)))
		}
	}
	return newFrame(out)
}

// FeatureNames returns the generated indicator column names in output order.
func (e *OneHotEncoder) FeatureNames() []string {
	var names []string
	for j, name := range e.Columns {
		for _, cat := range e.Categories[j] {
			names = append(names, featureName(name, cat))
		}
	}
	return names
}

func featureName(column, category string) string { return column + "_" + category }

func noMissing(s series.Series) error {
	for _, missing := range s.IsNaN() {
		if missing {
			return fmt.Errorf("%w: %q", ErrMissingCategory, s.Name)
		}
	}
	return nil
}
