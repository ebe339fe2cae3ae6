package pdfium

import (
	"math"
	"testing"
)

func TestIsIdentity(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want bool
	}{
		{"identity", Identity(), true},
		{"scale 1,1 (identity via Scale)", Scale(1, 1), true},
		{"zero translation", Translate(0, 0), true},
		{"translation", Translate(10, 20), false},
		{"uniform scale", Scale(2, 2), false},
		{"rotation 90deg", Rotate(math.Pi / 2), false},
		{"zero matrix", Matrix{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.IsIdentity()
			if got != tt.want {
				t.Errorf("Matrix%+v.IsIdentity() = %v, want %v", tt.m, got, tt.want)
			}
		})
	}
}

func TestMatrixMultiply(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		n    Matrix
		want Matrix
	}{
		{"identity absorbs", Identity(), Scale(2, 3), Scale(2, 3)},
		{"scale then scale", Scale(2, 2), Scale(3, 3), Scale(6, 6)},
		{
			"translate after scale",
			Translate(10, 20),
			Scale(2, 2),
			Matrix{A: 2, B: 0, C: 10, D: 0, E: 2, F: 20},
		},
		{
			"scale after translate",
			Scale(2, 2),
			Translate(10, 20),
			Matrix{A: 2, B: 0, C: 20, D: 0, E: 2, F: 40},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.Multiply(tt.n)
			if got != tt.want {
				t.Errorf("Multiply() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMatrixTransformPoint(t *testing.T) {
	tests := []struct {
		name  string
		m     Matrix
		x, y  float64
		wantX float64
		wantY float64
	}{
		{"identity", Identity(), 5, 7, 5, 7},
		{"scale", Scale(2, 3), 5, 7, 10, 21},
		{"translate", Translate(1, -1), 5, 7, 6, 6},
		{"scale with pan", Matrix{A: 0.5, C: 10, E: 0.5, F: 20}, 100, 200, 60, 120},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotX, gotY := tt.m.TransformPoint(tt.x, tt.y)
			if gotX != tt.wantX || gotY != tt.wantY {
				t.Errorf("TransformPoint(%v, %v) = (%v, %v), want (%v, %v)",
					tt.x, tt.y, gotX, gotY, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestMatrixInvert(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"identity", Identity()},
		{"scale", Scale(2, 4)},
		{"translation", Translate(10, -5)},
		{"rotation", Rotate(math.Pi / 3)},
		{"combined", Scale(2, 2).Multiply(Translate(3, 4))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := tt.m.Invert()
			round := tt.m.Multiply(inv)
			if !nearlyIdentity(round) {
				t.Errorf("m * m.Invert() = %+v, want identity", round)
			}
		})
	}
}

func TestMatrixInvertSingular(t *testing.T) {
	got := Matrix{}.Invert()
	if !got.IsIdentity() {
		t.Errorf("singular Invert() = %+v, want identity", got)
	}
}

func nearlyIdentity(m Matrix) bool {
	const eps = 1e-9
	id := Identity()
	return math.Abs(m.A-id.A) < eps && math.Abs(m.B-id.B) < eps &&
		math.Abs(m.C-id.C) < eps && math.Abs(m.D-id.D) < eps &&
		math.Abs(m.E-id.E) < eps && math.Abs(m.F-id.F) < eps
}
