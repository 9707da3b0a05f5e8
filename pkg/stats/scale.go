package stats

import "errors"

var ErrScalerNotFitted = errors.New("stats: scaler used before Fit")

// StandardScaler rescales columns to zero mean and unit variance.
// Columns are passed column-major: cols[j] holds every value of column j.
type StandardScaler struct {
	Mean []float64
	Std  []float64
	fit  bool
}

func NewStandardScaler() *StandardScaler { return &StandardScaler{} }

// Fit learns the population mean and std of each column.
func (s *StandardScaler) Fit(cols [][]float64) error {
	s.Mean = make([]float64, len(cols))
	s.Std = make([]float64, len(cols))
	for j, col := range cols {
		s.Mean[j] = Mean(col)
		s.Std[j] = PopStd(col)
		// constant column: leave it centred at 0
		if s.Std[j] == 0 {
			s.Std[j] = 1
		}
	}
	s.fit = true
	return nil
}

func (s *StandardScaler) Transform(cols [][]float64) ([][]float64, error) {
	if !s.fit {
		return nil, ErrScalerNotFitted
	}
	if len(cols) != len(s.Mean) {
		return nil, errors.New("stats: column count differs from fitted data")
	}
	out := make([][]float64, len(cols))
	for j, col := range cols {
		scaled := make([]float64, len(col))
		for i, v := range col {
			scaled[i] = (v - s.Mean[j]) / s.Std[j]
		}
		out[j] = scaled
	}
	return out, nil
}

func (s *StandardScaler) FitTransform(cols [][]float64) ([][]float64, error) {
	if err := s.Fit(cols); err != nil {
		return nil, err
	}
	return s.Transform(cols)
}
