package randsource_test

import (
	"testing"

	"github.com/bitgloss/randsource"
)

func TestFillInt(t *testing.T) {
	r := randsource.New()

	t.Run("bounds", func(t *testing.T) {
		const (
			min = -3
			max = 7
		)
		s := make([]int, 500)
		randsource.FillInt(r, s, min, max)
		if len(s) != 500 {
			t.Fatalf("Fill changed the length to %d", len(s))
		}
		for i, v := range s {
			if v < min || v > max {
				t.Fatalf("s[%d] = %d, out of [%d, %d]", i, v, min, max)
			}
		}
	})

	t.Run("narrow-types", func(t *testing.T) {
		s := make([]int8, 200)
		randsource.FillInt[int8](r, s, -128, 127)
		u := make([]uint16, 200)
		randsource.FillInt[uint16](r, u, 10, 20)
		for i, v := range u {
			if v < 10 || v > 20 {
				t.Fatalf("u[%d] = %d, out of [10, 20]", i, v)
			}
		}
	})

	t.Run("empty", func(t *testing.T) {
		randsource.FillInt(r, []int(nil), 0, 1)
	})

	t.Run("min-gt-max", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Expected min > max to panic")
			}
		}()
		randsource.FillInt(r, make([]int, 1), 1, 0)
	})
}

func TestFillReal(t *testing.T) {
	r := randsource.New()

	const (
		min = 2.5
		max = 4.5
	)
	s := make([]float64, 500)
	randsource.FillReal(r, s, min, max)
	for i, v := range s {
		if v < min || v > max {
			t.Fatalf("s[%d] = %v, out of [%v, %v]", i, v, min, max)
		}
	}

	f32 := make([]float32, 100)
	randsource.FillReal[float32](r, f32, -1, 1)
	for i, v := range f32 {
		if v < -1 || v > 1 {
			t.Fatalf("f32[%d] = %v, out of [-1, 1]", i, v)
		}
	}
}

func TestFillUnit(t *testing.T) {
	r := randsource.New()

	s := make([]float64, 500)
	randsource.FillUnit(r, s)
	for i, v := range s {
		if v < 0 || v >= 1 {
			t.Fatalf("s[%d] = %v, out of [0, 1)", i, v)
		}
	}
}
