// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package numeric

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePrice(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"$20,000", 20000, false},
		{"18500", 18500, false},
		{"USD 1,234.50", 1234.5, false},
		{"", 0, false},
		{"N/A", 0, false},
		{"-500", 500, false},
		{"1.2.3", 0, true},
		{".", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizePrice(tt.in)
			if tt.wantErr {
				var fe *FormatError
				require.ErrorAs(t, err, &fe)
				assert.Equal(t, tt.in, fe.Input)
				assert.True(t, errors.Is(err, strconv.ErrSyntax))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseThreshold(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"19000", 19000, true},
		{" $19,000 ", 19000, true},
		{"0", 0, true},
		{"", 0, false},
		{"   ", 0, false},
		{"cheap", 0, false},
		{"1.9.0", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseThreshold(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFloatOr(t *testing.T) {
	assert.Equal(t, 12.5, FloatOr(" 12.5 ", 0))
	assert.Equal(t, 0.0, FloatOr("", 0))
	assert.Equal(t, 0.0, FloatOr("abc", 0))
	assert.Equal(t, 0.0, FloatOr("NaN", 0))
	assert.Equal(t, 7.0, FloatOr("+Inf", 7))
}

func TestIntOr(t *testing.T) {
	assert.Equal(t, 2010, IntOr("2010", 2024))
	assert.Equal(t, 2024, IntOr("", 2024))
	assert.Equal(t, 2024, IntOr("2010.5", 2024))
	assert.Equal(t, 1999, IntOr(" 1999\n", 2024))
}
