package pipeline

import (
	"errors"
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/gonum/mat"
)

var ErrColumnMismatch = errors.New("pipeline: configured column not found in input")

// Branch routes a set of input columns through one pipeline.
type Branch struct {
	Name     string
	Columns  []string
	Pipeline *Pipeline
}

// ColumnTransformer runs each branch on its own columns and concatenates
// the branch outputs side by side, in branch order.
type ColumnTransformer struct {
	Branches []Branch
}

func NewColumnTransformer(branches ...Branch) *ColumnTransformer {
	return &ColumnTransformer{Branches: branches}
}

// Validate fails with ErrColumnMismatch on the first configured column df lacks.
func (ct *ColumnTransformer) Validate(df dataframe.DataFrame) error {
	have := make(map[string]struct{}, df.Ncol())
	for _, n := range df.Names() {
		have[n] = struct{}{}
	}
	for _, b := range ct.Branches {
		for _, c := range b.Columns {
			if _, ok := have[c]; !ok {
				return fmt.Errorf("%w: %q (branch %s)", ErrColumnMismatch, c, b.Name)
			}
		}
	}
	return nil
}

// FitTransform fits every branch on df and returns the concatenated result.
// Row count and row order are preserved.
func (ct *ColumnTransformer) FitTransform(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	if err := ct.Validate(df); err != nil {
		return dataframe.DataFrame{}, err
	}
	rows := df.Nrow()

	outputs := make([]dataframe.DataFrame, len(ct.Branches))
	var names []string
	for i, b := range ct.Branches {
		if len(b.Columns) == 0 {
			continue
		}
		in := df.Select(b.Columns)
		if in.Err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("branch %s: %w", b.Name, in.Err)
		}
		out, err := b.Pipeline.FitTransform(in)
		if err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("branch %s: %w", b.Name, err)
		}
		if out.Nrow() != rows {
			return dataframe.DataFrame{}, fmt.Errorf("branch %s: produced %d rows from %d", b.Name, out.Nrow(), rows)
		}
		outputs[i] = out
		names = append(names, out.Names()...)
	}
	if rows == 0 || len(names) == 0 {
		return dataframe.DataFrame{}, errors.New("pipeline: nothing to transform")
	}

	block := mat.NewDense(rows, len(names), nil)
	col := 0
	for _, out := range outputs {
		if out.Ncol() == 0 {
			continue
		}
		for _, name := range out.Names() {
			for r, v := range out.Col(name).Float() {
				block.Set(r, col, v)
			}
			col++
		}
	}

	res := dataframe.LoadMatrix(block)
	if res.Err != nil {
		return dataframe.DataFrame{}, res.Err
	}
	if err := res.SetNames(names...); err != nil {
		return dataframe.DataFrame{}, err
	}
	return res, nil
}
