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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It
// remembers the mode of the terminal when it is initialised so that it can
// be restored later, and does nothing at all if the input is not a terminal.
package easyterm

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/retcon/retcon/curated"
)

// Sentinal error patterns.
const (
	NoInput       = "easyterm: terminal requires an input file"
	ModeChangeErr = "easyterm: cannot change terminal mode: %v"
)

// Terminal is the input side of a posix terminal.
type Terminal struct {
	fd         uintptr
	isTerminal bool

	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

// Initialise the fields in the Terminal struct. It is not an error if the
// input is not a terminal.
func (pt *Terminal) Initialise(input *os.File) error {
	if input == nil {
		return curated.Errorf(NoInput)
	}

	pt.fd = input.Fd()

	if _, err := unix.IoctlGetTermios(int(pt.fd), unix.TCGETS); err != nil {
		pt.isTerminal = false
		return nil
	}

	if err := termios.Tcgetattr(pt.fd, &pt.canAttr); err != nil {
		return curated.Errorf(ModeChangeErr, err)
	}

	// cbreak mode is the canonical mode with line buffering and echo removed
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	pt.isTerminal = true

	return nil
}

// IsTerminal returns true if the input file is a terminal.
func (pt *Terminal) IsTerminal() bool {
	return pt.isTerminal
}

// CanonicalMode puts terminal into the mode it was in when Initialise() was
// called.
func (pt *Terminal) CanonicalMode() error {
	return pt.set(&pt.canAttr)
}

// CBreakMode puts terminal into cbreak mode.
func (pt *Terminal) CBreakMode() error {
	return pt.set(&pt.cbreakAttr)
}

func (pt *Terminal) set(attr *unix.Termios) error {
	if !pt.isTerminal {
		return nil
	}
	if err := termios.Tcsetattr(pt.fd, termios.TCSANOW, attr); err != nil {
		return curated.Errorf(ModeChangeErr, err)
	}
	return nil
}
