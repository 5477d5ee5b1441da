package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPRNGServiceIsReproducible(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Intn(7), b.Intn(7))
	}
	assert.Equal(t, int64(42), a.Seed())
}

func TestPRNGServiceZeroSeedUsesClock(t *testing.T) {
	assert.NotZero(t, NewPRNGService(0).Seed())
}

func TestLerp(t *testing.T) {
	assert.InDelta(t, 5.0, Lerp(0, 10, 0.5), 1e-6)
	assert.InDelta(t, 10.0, Lerp(0, 10, 1), 1e-6)
}

func TestApproach(t *testing.T) {
	assert.Equal(t, 3.0, Approach(0, 10, 3))
	assert.Equal(t, 10.0, Approach(9, 10, 3))
	assert.Equal(t, 7.0, Approach(10, 0, 3))
	assert.Equal(t, 0.0, Approach(1, 0, 3))
}

func TestToRoman(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, ""},
		{-3, ""},
		{1, "I"},
		{4, "IV"},
		{9, "IX"},
		{14, "XIV"},
		{40, "XL"},
		{1994, "MCMXCIV"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToRoman(tt.in), "ToRoman(%d)", tt.in)
	}
}
