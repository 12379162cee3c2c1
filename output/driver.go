// This file is part of RetCon.
//
// RetCon is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// RetCon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with RetCon.  If not, see <https://www.gnu.org/licenses/>.

package output

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/host/v3"
	"periph.io/x/host/v3/bcm283x"

	"github.com/retcon/retcon/curated"
)

// Driver implementations provide access to the GPIO hardware.
type Driver interface {
	// Init prepares the hardware. Called once, before any call to Line().
	Init() error

	// Line returns the GPIO pin for the numbered line.
	Line(l Line) (gpio.PinIO, error)
}

// PeriphDriver accesses the GPIO lines of a Raspberry Pi through periph.io.
type PeriphDriver struct{}

// Init implements the Driver interface.
func (PeriphDriver) Init() error {
	if _, err := host.Init(); err != nil {
		return curated.Errorf(HostFailed, err)
	}
	if !bcm283x.Present() {
		return curated.Errorf(NoController)
	}
	return nil
}

// Line implements the Driver interface.
func (PeriphDriver) Line(l Line) (gpio.PinIO, error) {
	p := gpioreg.ByName(fmt.Sprintf("GPIO%d", l))
	if p == nil {
		return nil, curated.Errorf(LineUnavailable, l)
	}
	return p, nil
}

// DryRunDriver keeps GPIO lines in memory. Useful for running the program on
// machines without GPIO hardware and for testing.
type DryRunDriver struct {
	lines map[Line]*gpiotest.Pin
}

// NewDryRunDriver is the preferred method of initialisation for the
// DryRunDriver type.
func NewDryRunDriver() *DryRunDriver {
	return &DryRunDriver{
		lines: make(map[Line]*gpiotest.Pin),
	}
}

// Init implements the Driver interface.
func (drv *DryRunDriver) Init() error {
	return nil
}

// Line implements the Driver interface.
func (drv *DryRunDriver) Line(l Line) (gpio.PinIO, error) {
	if p, ok := drv.lines[l]; ok {
		return p, nil
	}
	p := &gpiotest.Pin{
		N:   fmt.Sprintf("GPIO%d", l),
		Num: int(l),
		Fn:  "Out/Low",
	}
	drv.lines[l] = p
	return p, nil
}

// Level returns the current level of a line. Lines that have never been
// requested are reported as low.
func (drv *DryRunDriver) Level(l Line) gpio.Level {
	if p, ok := drv.lines[l]; ok {
		return p.Read()
	}
	return gpio.Low
}
