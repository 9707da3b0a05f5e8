package dataprep

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"etl/pkg/stats"
)

// Scaler standardizes every column of a frame with a stats.StandardScaler.
type Scaler struct {
	Columns []string
	scaler  *stats.StandardScaler
}

// NewScaler returns an unfitted Scaler.
func NewScaler() *Scaler { return &Scaler{scaler: stats.NewStandardScaler()} }

// Fit learns the mean and std of every column.
func (s *Scaler) Fit(df dataframe.DataFrame) error {
	cols, err := floatColumns(df, df.Names())
	if err != nil {
		return err
	}
	s.Columns = df.Names()
	return s.scaler.Fit(cols)
}

// Transform standardizes every column with the fitted statistics.
func (s *Scaler) Transform(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	if err := checkColumns(df, s.Columns); err != nil {
		return dataframe.DataFrame{}, err
	}
	cols, err := floatColumns(df, s.Columns)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	scaled, err := s.scaler.Transform(cols)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	out := make([]series.Series, len(scaled))
	for j, col := range scaled {
		out[j] = series.New(col, series.Float, s.Columns[j])
	}
	return newFrame(out)
}

func floatColumns(df dataframe.DataFrame, names []string) ([][]float64, error) {
	cols := make([][]float64, len(names))
	for j, name := range names {
		s, err := column(df, name)
		if err != nil {
			return nil, err
		}
		cols[j] = s.Float()
	}
	return cols, nil
}
