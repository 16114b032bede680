package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want float64
	}{
		{"number", `1299`, 1299},
		{"decimal", `4.5`, 4.5},
		{"quoted number", `"1299"`, 1299},
		{"quoted decimal", `"99.99"`, 99.99},
		{"null", `null`, 0},
		{"empty string", `""`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var a Amount
			require.NoError(t, json.Unmarshal([]byte(tc.in), &a))
			assert.Equal(t, tc.want, a.Float64())
		})
	}

	t.Run("non-numeric string fails", func(t *testing.T) {
		var a Amount
		assert.Error(t, json.Unmarshal([]byte(`"abc"`), &a))
	})
}

func TestEffectivePrice(t *testing.T) {
	full := Product{Price: 1299}
	assert.Equal(t, 1299.0, full.EffectivePrice())

	d := Amount(999)
	sale := Product{Price: 1299, DiscountedPrice: &d}
	assert.Equal(t, 999.0, sale.EffectivePrice())
}
