package gpio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDuty(t *testing.T) {
	assert.Equal(t, uint32(0), Duty(0, CYCLE_LEN))
	assert.Equal(t, uint32(16), Duty(0.5, CYCLE_LEN))
	assert.Equal(t, uint32(CYCLE_LEN), Duty(1, CYCLE_LEN))
	assert.Equal(t, uint32(CYCLE_LEN), Duty(7, CYCLE_LEN))
	assert.Equal(t, uint32(0), Duty(-0.2, CYCLE_LEN))
	assert.Equal(t, uint32(25), Duty(0.25, 100))

	var last uint32
	for l := 0.0; l <= 1; l += 0.05 {
		d := Duty(l, CYCLE_LEN)
		assert.GreaterOrEqual(t, d, last)
		last = d
	}
}

func TestOpenLEDRejectsNonPWMPin(t *testing.T) {
	_, err := OpenLED(4)
	assert.True(t, errors.Is(err, ErrNotPWM))
}
