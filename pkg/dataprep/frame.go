package dataprep

import (
	"errors"
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

var (
	ErrNotFitted        = errors.New("dataprep: transform called before Fit")
	ErrNoObservedValues = errors.New("dataprep: column has no observed values")
	ErrUnknownColumn    = errors.New("dataprep: column was not seen during Fit")
)

// column fetches a column by name, turning gota's in-band error into a returned one.
func column(df dataframe.DataFrame, name string) (series.Series, error) {
	s := df.Col(name)
	if s.Err != nil {
		return series.Series{}, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	return s, nil
}

// checkColumns verifies df carries exactly the fitted columns, in order.
func checkColumns(df dataframe.DataFrame, fitted []string) error {
	if fitted == nil {
		return ErrNotFitted
	}
	names := df.Names()
	if len(names) != len(fitted) {
		return fmt.Errorf("dataprep: got %d columns, fitted on %d", len(names), len(fitted))
	}
	for i, n := range names {
		if n != fitted[i] {
			return fmt.Errorf("%w: %q", ErrUnknownColumn, n)
		}
	}
	return nil
}

func newFrame(cols []series.Series) (dataframe.DataFrame, error) {
	df := dataframe.New(cols...)
	if df.Err != nil {
		return dataframe.DataFrame{}, df.Err
	}
	return df, nil
}
