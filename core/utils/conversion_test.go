package utils

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt64(t *testing.T) {
	tests := []struct {
		name    string
		val     any
		want    int64
		wantErr bool
	}{
		{"Int", 42, 42, false},
		{"Int64", int64(8000000000), 8000000000, false},
		{"Uint8", uint8(7), 7, false},
		{"String", "45000000", 45000000, false},
		{"StringPadded", "  12 ", 12, false},
		{"StringSigned", "-3", -3, false},
		{"IntegralFloat", 1000.0, 1000, false},
		{"JSONNumber", json.Number("19000000"), 19000000, false},
		{"JSONNumberIntegralFloat", json.Number("2.0"), 2, false},
		{"Bytes", []byte("9"), 9, false},
		{"FractionalFloat", 1.5, 0, true},
		{"FractionalString", "1.5", 0, true},
		{"Word", "many", 0, true},
		{"Empty", "", 0, true},
		{"Nil", nil, 0, true},
		{"Bool", true, 0, true},
		{"NaN", math.NaN(), 0, true},
		{"UintOverflow", uint64(math.MaxUint64), 0, true},
		{"FloatTwoPow63", math.Exp2(63), 0, true},
		{"JSONNumberTwoPow63", json.Number("9.223372036854775808e18"), 0, true},
		{"FloatMinInt64", -math.Exp2(63), math.MinInt64, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToInt64(tt.val)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNotNumeric)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToRoundedInt64(t *testing.T) {
	tests := []struct {
		name    string
		val     any
		want    int64
		wantErr bool
	}{
		{"Int", 756000, 756000, false},
		{"Float", 2780400.4, 2780400, false},
		{"FloatUp", 0.6, 1, false},
		{"HalfToEven", 2.5, 2, false},
		{"HalfToEvenOdd", 3.5, 4, false},
		{"String", "8515767.0", 8515767, false},
		{"JSONNumber", json.Number("1104.3"), 1104, false},
		{"Word", "wide", 0, true},
		{"Inf", math.Inf(1), 0, true},
		{"Nil", nil, 0, true},
		{"FloatTwoPow63", 9223372036854775807.0, 0, true},
		{"FractionalNearTwoPow63", "9223372036854775807.4", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToRoundedInt64(tt.val)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToString(t *testing.T) {
	assert.Equal(t, "", ToString(nil))
	assert.Equal(t, "abc", ToString("abc"))
	assert.Equal(t, "abc", ToString([]byte("abc")))
	assert.Equal(t, "12.5", ToString(json.Number("12.5")))
	assert.Equal(t, "42", ToString(42))
}
