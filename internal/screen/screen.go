// Package screen controls the physical display: backlight power via
// GPIO and the panel power rail via raspi-gpio, toggled by a debounced
// hardware switch.
package screen

import (
	"log"
	"os/exec"
	"strconv"

	"github.com/stianeikeland/go-rpio/v4"
)

// Power turns the display on and off. Failures are logged and ignored;
// a dead backlight should never take playback down with it.
type Power struct {
	backlight rpio.Pin
	rail      int
}

// NewPower configures the backlight output pin. rail is the BCM pin of
// the panel power rail, driven through raspi-gpio.
func NewPower(backlightPin, rail int) Power {
	pin := rpio.Pin(backlightPin)
	pin.Output()
	return Power{backlight: pin, rail: rail}
}

// On powers the panel rail and raises the backlight.
func (p Power) On() {
	log.Println("[screen] turning on screen")
	p.setRail("op", "a5")
	p.backlight.High()
}

// Off drops the backlight and cuts the panel rail.
func (p Power) Off() {
	log.Println("[screen] turning off screen")
	p.setRail("ip")
	p.backlight.Low()
}

func (p Power) setRail(args ...string) {
	argv := append([]string{"set", strconv.Itoa(p.rail)}, args...)
	if out, err := exec.Command("raspi-gpio", argv...).CombinedOutput(); err != nil {
		log.Printf("[screen] raspi-gpio %v: %s: %v", argv, out, err)
	}
}
