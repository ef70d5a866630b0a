package cook

import (
	"testing"

	"github.com/vovakirdan/tui-kitchen/internal/core"
)

func TestOpposite(t *testing.T) {
	tests := []struct {
		in, expected Facing
	}{
		{FacingUp, FacingDown},
		{FacingDown, FacingUp},
		{FacingLeft, FacingRight},
		{FacingRight, FacingLeft},
		{FacingNone, FacingNone},
		{Facing(42), FacingNone},
	}

	for _, tc := range tests {
		if got := tc.in.Opposite(); got != tc.expected {
			t.Errorf("%v.Opposite() = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestRotate90C(t *testing.T) {
	tests := []struct {
		in, expected Facing
	}{
		{FacingUp, FacingRight},
		{FacingRight, FacingDown},
		{FacingDown, FacingLeft},
		{FacingLeft, FacingUp},
		{FacingNone, FacingNone},
		{Facing(-1), FacingNone},
	}

	for _, tc := range tests {
		if got := tc.in.Rotate90C(); got != tc.expected {
			t.Errorf("%v.Rotate90C() = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, d := range Cardinals {
		if got := d.Rotate90C().Rotate90C().Rotate90C().Rotate90C(); got != d {
			t.Errorf("four rotations of %v gave %v", d, got)
		}
		if got := d.Rotate90C().Rotate90C(); got != d.Opposite() {
			t.Errorf("two rotations of %v gave %v, expected its opposite", d, got)
		}
	}
}

func TestUnit(t *testing.T) {
	tests := []struct {
		in       Facing
		expected core.Vec
	}{
		{FacingUp, core.Vec{Y: -1}},
		{FacingDown, core.Vec{Y: 1}},
		{FacingLeft, core.Vec{X: -1}},
		{FacingRight, core.Vec{X: 1}},
		{FacingNone, core.Vec{}},
	}

	for _, tc := range tests {
		if got := tc.in.Unit(); got != tc.expected {
			t.Errorf("%v.Unit() = %+v, expected %+v", tc.in, got, tc.expected)
		}
	}
}
