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

package joystick

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/sys/unix"

	"github.com/retcon/retcon/curated"
	"github.com/retcon/retcon/logger"
	"github.com/retcon/retcon/output"
)

// ShortRead is the reason given for a disconnection when the device returns
// less than a complete event.
const ShortRead = "short read (%d bytes)"

// Joystick is an input source for a joystick device node. It implements the
// source.Source interface.
type Joystick struct {
	out     output.Writer
	player  output.Player
	path    string
	mapping Mapping

	// file descriptor of the open device. -1 if not connected
	fd int

	// raw events are logged if debug is allowed
	debug logger.Permission
}

// NewJoystick is the preferred method of initialisation for the Joystick
// type. The device is not opened until Connect() is called.
func NewJoystick(out output.Writer, player output.Player, path string, mapping Mapping) *Joystick {
	return &Joystick{
		out:     out,
		player:  player,
		path:    path,
		mapping: mapping,
		fd:      -1,
		debug:   logger.Flag(false),
	}
}

// SetDebug turns logging of raw events on or off.
func (js *Joystick) SetDebug(debug bool) {
	js.debug = logger.Flag(debug)
}

func (js *Joystick) String() string {
	return fmt.Sprintf("joystick %s (%s)", js.path, js.player)
}

// Path returns the path of the device node.
func (js *Joystick) Path() string {
	return js.path
}

// Fd implements the source.Source interface.
func (js *Joystick) Fd() int {
	return js.fd
}

// Connect implements the source.Source interface.
func (js *Joystick) Connect() bool {
	if js.fd >= 0 {
		return true
	}

	// opening in non-blocking mode means the open itself cannot wait, for
	// example on a FIFO with no writer
	fd, err := unix.Open(js.path, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return false
	}

	js.fd = fd
	logger.Logf(logger.Allow, "joystick", "connected: %s", js.path)

	return true
}

// ReadOne implements the source.Source interface.
func (js *Joystick) ReadOne() bool {
	if js.fd < 0 {
		return false
	}

	var b [EventSize]byte
	n, err := unix.Read(js.fd, b[:])
	if err != nil {
		if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR) {
			return false
		}
		js.disconnect(err)
		return false
	}

	if n == 0 {
		js.disconnect(io.EOF)
		return false
	}

	ev, err := Decode(b[:n])
	if err != nil {
		js.disconnect(curated.Errorf(ShortRead, n))
		return false
	}

	js.interpret(ev)

	return true
}

// Close the device if it is open.
func (js *Joystick) Close() {
	if js.fd >= 0 {
		_ = unix.Close(js.fd)
		js.fd = -1
	}
}

func (js *Joystick) disconnect(reason error) {
	js.Close()
	logger.Logf(logger.Allow, "joystick", "disconnected: %s (%v)", js.path, reason)
}

func (js *Joystick) interpret(ev Event) {
	logger.Logf(js.debug, "joystick", "%s: %s", js.path, ev)

	if ev.IsButton() {
		if b, ok := js.mapping.Buttons[ev.Number]; ok {
			js.out.Write(js.player, b, ev.Value != 0)
		}
	}

	if ev.IsAxis() {
		if stick, ok := js.mapping.Sticks[ev.Stick()]; ok {
			axis := stick[ev.SubAxis()]

			// both outputs are written every time so that the output always
			// reflects the most recent axis value
			switch Quantize(ev.Value) {
			case Negative:
				js.out.Write(js.player, axis.Negative, true)
				js.out.Write(js.player, axis.Positive, false)
			case Positive:
				js.out.Write(js.player, axis.Negative, false)
				js.out.Write(js.player, axis.Positive, true)
			default:
				js.out.Write(js.player, axis.Negative, false)
				js.out.Write(js.player, axis.Positive, false)
			}
		}
	}
}
