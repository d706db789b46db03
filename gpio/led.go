// Package gpio drives a Raspberry Pi PWM pin as a loudness indicator, a
// hardware counterpart to the dancing line.
package gpio

import (
	"fmt"
	"math"

	rpio "github.com/stianeikeland/go-rpio/v4"
)

// PWM_FREQ is the PWM clock for the LED pin. At CYCLE_LEN steps per
// period the LED flickers at PWM_FREQ/CYCLE_LEN, well above what is
// visible.
const PWM_FREQ = 64_000

// CYCLE_LEN is the number of steps in one PWM period.
const CYCLE_LEN = 32

var ErrNotPWM = fmt.Errorf("gpio: pin does not support hardware PWM")

// LED is an LED on a hardware PWM pin whose brightness follows loudness.
type LED struct {
	pin rpio.Pin
}

// pins with a hardware PWM channel on the BCM2835 family
var pwmPins = map[int]bool{12: true, 13: true, 18: true, 19: true}

// OpenLED maps GPIO memory and configures the BCM-numbered pin for PWM.
// Be sure to Close() the LED after use.
func OpenLED(bcmPin int) (led *LED, err error) {
	if !pwmPins[bcmPin] {
		return nil, fmt.Errorf("%w: %d", ErrNotPWM, bcmPin)
	}
	err = rpio.Open()
	if err != nil {
		return
	}
	pin := rpio.Pin(bcmPin)
	pin.Mode(rpio.Pwm)
	pin.Freq(PWM_FREQ)
	pin.DutyCycle(0, CYCLE_LEN)
	led = &LED{pin: pin}
	return
}

// Duty maps loudness in [0, 1] to a duty length out of cycle. Values
// outside the range are clamped.
func Duty(loudness float64, cycle uint32) uint32 {
	if loudness <= 0 || math.IsNaN(loudness) {
		return 0
	}
	if loudness >= 1 {
		return cycle
	}
	return uint32(loudness * float64(cycle))
}

// Show sets the LED brightness.
func (l *LED) Show(loudness float64) {
	l.pin.DutyCycle(Duty(loudness, CYCLE_LEN), CYCLE_LEN)
}

// Close turns the LED off and unmaps GPIO memory.
func (l *LED) Close() error {
	l.pin.DutyCycle(0, CYCLE_LEN)
	return rpio.Close()
}
