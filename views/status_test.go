package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusStep(t *testing.T) {
	cases := map[string]int{
		"placed":    1,
		"shipped":   2,
		"delivered": 3,
		"cancelled": 0,
		"unknown":   0,
		"":          0,
	}
	for status, want := range cases {
		assert.Equal(t, want, StatusStep(status), "status %q", status)
	}
}

func TestStatusStepCaseInsensitive(t *testing.T) {
	assert.Equal(t, StatusStep("placed"), StatusStep("Placed"))
	assert.Equal(t, StatusStep("shipped"), StatusStep("SHIPPED"))
	assert.Equal(t, StatusStep("delivered"), StatusStep("Delivered"))
}

func TestOrderStatusView(t *testing.T) {
	t.Run("delivered", func(t *testing.T) {
		v := OrderStatusView("Delivered")
		assert.Equal(t, 3, v.Step)
		assert.Equal(t, "check-circle", v.Icon)
		assert.True(t, v.ShowProgress)
	})

	t.Run("cancelled hides the progress bar", func(t *testing.T) {
		v := OrderStatusView("CANCELLED")
		assert.Equal(t, 0, v.Step)
		assert.Equal(t, "alert-circle", v.Icon)
		assert.False(t, v.ShowProgress)
	})

	t.Run("unknown status", func(t *testing.T) {
		v := OrderStatusView("mystery")
		assert.Equal(t, 0, v.Step)
		assert.Equal(t, "package", v.Icon)
		assert.Equal(t, "Order status unknown", v.Description)
		assert.True(t, v.ShowProgress)
	})
}
