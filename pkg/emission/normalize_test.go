package emission_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"Aethera-Backend/pkg/emission"
)

func TestNormalizeScopeNumber(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  int
	}{
		{"integer", 2, 2},
		{"float", 3.0, 3},
		{"numeric string", "1", 1},
		{"labeled string", "Scope 2", 2},
		{"lowercase label", "scope 3", 3},
		{"padded string", "  Scope 1  ", 1},
		{"digit order wins", "Scope 12", 1},
		{"nil", nil, 0},
		{"empty string", "", 0},
		{"garbage", "unknown", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, emission.NormalizeScopeNumber(tt.input))
		})
	}
}

func TestNormalizeScopeLabel(t *testing.T) {
	assert.Equal(t, "Scope 2", emission.NormalizeScopeLabel(2))
	assert.Equal(t, "Scope 2", emission.NormalizeScopeLabel("2"))
	assert.Equal(t, "Scope 2", emission.NormalizeScopeLabel("Scope 2"))
	assert.Equal(t, "scope 3", emission.NormalizeScopeLabel(" scope 3 "))
}

func TestAsNumber(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  float64
	}{
		{"float64", 12.5, 12.5},
		{"int", 7, 7},
		{"int64", int64(42), 42},
		{"numeric string", "1000", 1000},
		{"decimal string", " 3.14 ", 3.14},
		{"nil", nil, 0},
		{"empty string", "", 0},
		{"garbage string", "a lot", 0},
		{"nan", math.NaN(), 0},
		{"positive infinity", math.Inf(1), 0},
		{"negative infinity", math.Inf(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, emission.AsNumber(tt.input))
		})
	}
}

func TestToMetricTons(t *testing.T) {
	assert.Equal(t, 1.5, emission.ToMetricTons(1500.0))
	assert.Equal(t, 0.0, emission.ToMetricTons(nil))
	assert.Equal(t, 2.0, emission.ToMetricTons("2000"))
}

func TestRound2(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"already exact", 1.5, 1.5},
		{"rounds down", 1.004, 1.0},
		{"midpoint rounds up", 1.005, 1.01},
		{"rounds up", 2.678, 2.68},
		{"negative midpoint away from zero", -1.005, -1.01},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, emission.Round2(tt.input), 1e-12)
		})
	}
}

func TestRound2Idempotent(t *testing.T) {
	rounded := emission.Round2(1.005)
	assert.Equal(t, rounded, emission.Round2(rounded))
}
