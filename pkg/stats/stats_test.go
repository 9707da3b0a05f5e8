package stats

import (
	"math"
	"testing"
)

func TestMeanSkipsMissing(t *testing.T) {
	got := Mean([]float64{1, math.NaN(), 3})
	if got != 2 {
		t.Fatalf("expected mean 2, got %v", got)
	}
}

func TestPopVariance(t *testing.T) {
	got := PopVariance([]float64{1, 2, 3, 4})
	if math.Abs(got-1.25) > 1e-12 {
		t.Fatalf("expected population variance 1.25, got %v", got)
	}
	if v := PopVariance([]float64{7}); v != 0 {
		t.Fatalf("expected 0 for a single value, got %v", v)
	}
}

func TestMostFrequent(t *testing.T) {
	mode, ok := MostFrequent([]string{"b", "a", "c", "b", "a"}, nil)
	if !ok || mode != "a" {
		t.Fatalf("expected tie to resolve to %q, got %q (ok=%v)", "a", mode, ok)
	}

	mode, ok = MostFrequent([]string{"x", "y", "y"}, []bool{false, true, true})
	if !ok || mode != "x" {
		t.Fatalf("expected missing entries to be ignored, got %q", mode)
	}

	if _, ok := MostFrequent([]string{"x"}, []bool{true}); ok {
		t.Fatalf("expected ok=false when every value is missing")
	}
}

func TestStandardScaler(t *testing.T) {
	s := NewStandardScaler()
	out, err := s.FitTransform([][]float64{{1, 2, 3}, {5, 5, 5}})
	if err != nil {
		t.Fatalf("FitTransform error: %v", err)
	}
	want := 1 / math.Sqrt(2.0/3.0)
	if math.Abs(out[0][0]+want) > 1e-12 || out[0][1] != 0 || math.Abs(out[0][2]-want) > 1e-12 {
		t.Fatalf("unexpected scaled column: %v", out[0])
	}
	for _, v := range out[1] {
		if v != 0 {
			t.Fatalf("expected constant column to scale to 0, got %v", out[1])
		}
	}
}

func TestStandardScalerNotFitted(t *testing.T) {
	if _, err := NewStandardScaler().Transform([][]float64{{1}}); err != ErrScalerNotFitted {
		t.Fatalf("expected ErrScalerNotFitted, got %v", err)
	}
}
