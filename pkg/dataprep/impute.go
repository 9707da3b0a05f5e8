package dataprep

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"etl/pkg/stats"
)

// ---------- Simple Imputation Methods ----------

// MeanImputer replaces missing numeric values with the column mean.
type MeanImputer struct {
	Columns []string
	Means   []float64
}

// NewMeanImputer returns an unfitted mean imputer.
func NewMeanImputer() *MeanImputer { return &MeanImputer{} }

// Fit records the mean of the present values of every column.
func (m *MeanImputer) Fit(df dataframe.DataFrame) error {
	m.Columns, m.Means = nil, nil
	for _, name := range df.Names() {
		s, err := column(df, name)
		if err != nil {
			return err
		}
		vals := s.Float()
		if len(stats.Present(vals)) == 0 {
			return fmt.Errorf("%w: %q", ErrNoObservedValues, name)
		}
		m.Columns = append(m.Columns, name)
		m.Means = append(m.Means, stats.Mean(vals))
	}
	return nil
}

// Transform fills missing entries with the fitted means.
func (m *MeanImputer) Transform(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	if err := checkColumns(df, m.Columns); err != nil {
		return dataframe.DataFrame{}, err
	}
	out := make([]series.Series, len(m.Columns))
	for j, name := range m.Columns {
		s, err := column(df, name)
		if err != nil {
			return dataframe.DataFrame{}, err
		}
		vals := s.Float()
		for i, v := range vals {
			if math.IsNaN(v) {
				vals[i] = m.Means[j]
			}
		}
		out[j] = series.New(vals, series.Float, name)
	}
	return newFrame(out)
}

// MostFrequentImputer replaces missing categories with the column's most frequent value.
type MostFrequentImputer struct {
	Columns []string
	Modes   []string
}

// NewMostFrequentImputer returns an unfitted most-frequent imputer.
func NewMostFrequentImputer() *MostFrequentImputer { return &MostFrequentImputer{} }

// Fit records the most frequent present value of every column.
func (m *MostFrequentImputer) Fit(df dataframe.DataFrame) error {
	m.Columns, m.Modes = nil, nil
	for _, name := range df.Names() {
		s, err := column(df, name)
		if err != nil {
			return err
		}
		mode, ok := stats.MostFrequent(s.Records(), s.IsNaN())
		if !ok {
			return fmt.Errorf("%w: %q", ErrNoObservedValues, name)
		}
		m.Columns = append(m.Columns, name)
		m.Modes = append(m.Modes, mode)
	}
	return nil
}

// Transform fills missing entries with the fitted modes.
func (m *MostFrequentImputer) Transform(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	if err := checkColumns(df, m.Columns); err != nil {
		return dataframe.DataFrame{}, err
	}
	out := make([]series.Series, len(m.Columns))
	for j, name := range m.Columns {
		s, err := column(df, name)
		if err != nil {
			return dataframe.DataFrame{}, err
		}
		vals := s.Records()
		for i, missing := range s.IsNaN() {
			if missing {
				vals[i] = m.Modes[j]
			}
		}
		out[j] = series.New(vals, series.String, name)
	}
	return newFrame(out)
}
