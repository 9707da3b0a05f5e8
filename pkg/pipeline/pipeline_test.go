package pipeline

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

func sampleFrame() dataframe.DataFrame {
	return dataframe.New(
		series.New([]float64{1, 2, math.NaN(), 4}, series.Float, "n1"),
		series.New([]string{"b", "a", "b", "NaN"}, series.String, "cat"),
		series.New([]float64{10, 20, 30, 40}, series.Float, "n2"),
	)
}

func TestNewSchema(t *testing.T) {
	s, err := NewSchema([]string{"n1", "n2"}, []string{"cat"})
	if err != nil {
		t.Fatalf("NewSchema error: %v", err)
	}
	if got := s.Names(Numeric); !reflect.DeepEqual(got, []string{"n1", "n2"}) {
		t.Fatalf("unexpected numeric columns: %v", got)
	}
	if got := s.Names(Categorical); !reflect.DeepEqual(got, []string{"cat"}) {
		t.Fatalf("unexpected categorical columns: %v", got)
	}

	if _, err := NewSchema([]string{"n1"}, []string{"n1"}); !errors.Is(err, ErrOverlappingRoles) {
		t.Fatalf("expected ErrOverlappingRoles, got %v", err)
	}
}

func TestPreprocessor(t *testing.T) {
	s, err := NewSchema([]string{"n2", "n1"}, []string{"cat"})
	if err != nil {
		t.Fatalf("NewSchema error: %v", err)
	}
	out, err := NewPreprocessor(s).FitTransform(sampleFrame())
	if err != nil {
		t.Fatalf("FitTransform error: %v", err)
	}
	if out.Nrow() != 4 {
		t.Fatalf("expected 4 rows, got %d", out.Nrow())
	}
	want := []string{"n2", "n1", "cat_a", "cat_b"}
	if got := out.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected columns %v, got %v", want, got)
	}

	// n1 has its NaN replaced by the mean, which standardizes to 0.
	if v := out.Col("n1").Float()[2]; math.Abs(v) > 1e-12 {
		t.Fatalf("expected imputed n1 to scale to 0, got %v", v)
	}
	// the missing category takes the most frequent value "b"
	if got := out.Col("cat_b").Float(); !reflect.DeepEqual(got, []float64{1, 0, 1, 1}) {
		t.Fatalf("unexpected cat_b indicators: %v", got)
	}
}

func TestColumnTransformerMissingColumn(t *testing.T) {
	s, err := NewSchema([]string{"n1", "absent"}, []string{"cat"})
	if err != nil {
		t.Fatalf("NewSchema error: %v", err)
	}
	if _, err := NewPreprocessor(s).FitTransform(sampleFrame()); !errors.Is(err, ErrColumnMismatch) {
		t.Fatalf("expected ErrColumnMismatch, got %v", err)
	}
}

type doubler struct{ fitted int }

func (d *doubler) Fit(dataframe.DataFrame) error { d.fitted++; return nil }

func (d *doubler) Transform(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	vals := df.Col("x").Float()
	for i := range vals {
		vals[i] *= 2
	}
	return dataframe.New(series.New(vals, series.Float, "x")), nil
}

func TestPipelineChainsSteps(t *testing.T) {
	a, b := &doubler{}, &doubler{}
	p := NewPipeline(a, b)
	out, err := p.FitTransform(dataframe.New(series.New([]float64{1, 2}, series.Float, "x")))
	if err != nil {
		t.Fatalf("FitTransform error: %v", err)
	}
	if got := out.Col("x").Float(); !reflect.DeepEqual(got, []float64{4, 8}) {
		t.Fatalf("expected [4 8], got %v", got)
	}
	if a.fitted != 1 || b.fitted != 1 {
		t.Fatalf("expected each step fitted once, got %d and %d", a.fitted, b.fitted)
	}
}
