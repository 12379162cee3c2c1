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

	"github.com/retcon/retcon/curated"
	"github.com/retcon/retcon/logger"
)

// Sentinal error patterns returned by NewSink().
const (
	InitFailed       = "output: gpio init failed: %v"
	LineUnavailable  = "output: line GPIO%d unavailable"
	LineConfigFailed = "output: cannot configure line GPIO%d: %v"
)

// Sentinal error patterns returned by PeriphDriver.Init().
const (
	HostFailed   = "output: periph host: %v"
	NoController = "output: bcm283x GPIO controller not found"
)

// Sink drives the output lines. There should be exactly one instance for the
// lifetime of the process, created by the main package and shared with every
// input source.
type Sink struct {
	lines map[Player]map[Button]gpio.PinIO
}

// NewSink is the preferred method of initialisation for the Sink type. The
// hardware is initialised, job control signals are returned to their default
// disposition and every line is configured as an output and driven low.
//
// An error from NewSink() should be treated as fatal.
func NewSink(drv Driver) (*Sink, error) {
	if err := drv.Init(); err != nil {
		return nil, curated.Errorf(InitFailed, err)
	}

	resetJobControl()

	s := &Sink{
		lines: make(map[Player]map[Button]gpio.PinIO),
	}

	for _, pin := range Pins() {
		l, err := drv.Line(pin.Line)
		if err != nil {
			return nil, curated.Errorf(InitFailed, err)
		}
		if err := l.Out(gpio.Low); err != nil {
			return nil, curated.Errorf(LineConfigFailed, pin.Line, err)
		}
		if s.lines[pin.Player] == nil {
			s.lines[pin.Player] = make(map[Button]gpio.PinIO)
		}
		s.lines[pin.Player][pin.Button] = l
	}

	return s, nil
}

// Write drives the line for the player's button. Asserted writes are logged.
// Every call results in a write to the hardware, even if the level does not
// change.
//
// Implements the Writer interface.
func (s *Sink) Write(player Player, button Button, on bool) {
	if on {
		logger.Logf(logger.Allow, "output", "%s button %s", player, button)
	}

	l, ok := s.lines[player][button]
	if !ok {
		panic(fmt.Sprintf("output: no line for %s button %s", player, button))
	}

	if err := l.Out(gpio.Level(on)); err != nil {
		logger.Logf(logger.Allow, "output", "%s button %s: %v", player, button, err)
	}
}

// Level returns the current level of the line for the player's button.
func (s *Sink) Level(player Player, button Button) gpio.Level {
	l, ok := s.lines[player][button]
	if !ok {
		panic(fmt.Sprintf("output: no line for %s button %s", player, button))
	}
	return l.Read()
}

// Close drives every line low.
func (s *Sink) Close() {
	for _, pin := range Pins() {
		_ = s.lines[pin.Player][pin.Button].Out(gpio.Low)
	}
}
