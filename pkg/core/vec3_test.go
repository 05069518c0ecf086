package core

import (
	"math"
	"testing"
)

func TestVec3_Cross(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected Vec3
	}{
		{
			name:     "x cross y is z",
			a:        NewVec3(1, 0, 0),
			b:        NewVec3(0, 1, 0),
			expected: NewVec3(0, 0, 1),
		},
		{
			name:     "y cross z is x",
			a:        NewVec3(0, 1, 0),
			b:        NewVec3(0, 0, 1),
			expected: NewVec3(1, 0, 0),
		},
		{
			name:     "anti-commutative",
			a:        NewVec3(0, 1, 0),
			b:        NewVec3(1, 0, 0),
			expected: NewVec3(0, 0, -1),
		},
		{
			name:     "parallel vectors give zero",
			a:        NewVec3(2, 4, 6),
			b:        NewVec3(1, 2, 3),
			expected: NewVec3(0, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.a.Cross(tt.b)

			const tolerance = 1e-9
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()

	if math.Abs(v.Length()-1.0) > 1e-9 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}

	expected := NewVec3(0.6, 0.8, 0)
	if v.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected %v, got %v", expected, v)
	}
}

func TestVec3_Normalize_ZeroVector(t *testing.T) {
	v := NewVec3(0, 0, 0).Normalize()

	if v.Length() != 0 {
		t.Errorf("Expected zero vector, got %v", v)
	}
}

func TestVec3_Reflect(t *testing.T) {
	tests := []struct {
		name     string
		incident Vec3
		normal   Vec3
		expected Vec3
	}{
		{
			name:     "head-on reflection reverses",
			incident: NewVec3(0, -1, 0),
			normal:   NewVec3(0, 1, 0),
			expected: NewVec3(0, 1, 0),
		},
		{
			name:     "45 degree bounce",
			incident: NewVec3(1, -1, 0),
			normal:   NewVec3(0, 1, 0),
			expected: NewVec3(1, 1, 0),
		},
		{
			name:     "grazing along surface is unchanged",
			incident: NewVec3(1, 0, 0),
			normal:   NewVec3(0, 1, 0),
			expected: NewVec3(1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.incident.Reflect(tt.normal)

			const tolerance = 1e-9
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_Distance(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 6, 3)

	if d := a.Distance(b); math.Abs(d-5.0) > 1e-9 {
		t.Errorf("Expected distance 5, got %f", d)
	}
}

func TestVec3_Clamp(t *testing.T) {
	v := NewVec3(-0.5, 0.5, 1.5).Clamp(0, 1)

	expected := NewVec3(0, 0.5, 1)
	if v != expected {
		t.Errorf("Expected %v, got %v", expected, v)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 0, 0), NewVec3(0, 0, -2))

	point := ray.At(2)
	expected := NewVec3(1, 0, -4)
	if point.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected %v, got %v", expected, point)
	}
}
