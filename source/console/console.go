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

package console

import (
	"errors"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"github.com/retcon/retcon/curated"
	"github.com/retcon/retcon/logger"
	"github.com/retcon/retcon/output"
	"github.com/retcon/retcon/source/console/easyterm"
)

// Hold is the length of time a button is asserted for each keypress.
const Hold = 100 * time.Millisecond

// Sentinal error patterns returned by NewConsole().
const (
	InputFailed = "console: %v"
)

// Console is an input source for the terminal. It implements the
// source.Source interface.
type Console struct {
	out  output.Writer
	term easyterm.Terminal

	// the input file descriptor
	input int

	// the input file descriptor while there is still input to read. -1 once
	// the end of the input has been reached
	fd int
}

// NewConsole is the preferred method of initialisation for the Console type.
// If the input is a terminal it is put into cbreak mode. In all cases the
// input is switched to non-blocking mode.
func NewConsole(out output.Writer, input *os.File) (*Console, error) {
	con := &Console{
		out: out,
	}

	if err := con.term.Initialise(input); err != nil {
		return nil, curated.Errorf(InputFailed, err)
	}

	con.input = int(input.Fd())
	con.fd = con.input

	if con.term.IsTerminal() {
		logger.Log(logger.Allow, "console", "disabling echo")
		if err := con.term.CBreakMode(); err != nil {
			return nil, curated.Errorf(InputFailed, err)
		}
	}

	if err := unix.SetNonblock(con.input, true); err != nil {
		_ = con.term.CanonicalMode()
		return nil, curated.Errorf(InputFailed, err)
	}

	return con, nil
}

// Close returns the input to the state it was in before NewConsole() was
// called. It does not close the input file.
func (con *Console) Close() {
	if con.term.IsTerminal() {
		logger.Log(logger.Allow, "console", "restoring echo")
		if err := con.term.CanonicalMode(); err != nil {
			logger.Log(logger.Allow, "console", err)
		}
	}
	_ = unix.SetNonblock(con.input, false)
}

func (con *Console) String() string {
	return "console"
}

// Connect implements the source.Source interface. The console is always
// connected until the end of the input is reached or until the input fails
// with an error other than EAGAIN or EINTR. Neither condition recovers.
func (con *Console) Connect() bool {
	return con.fd >= 0
}

// Fd implements the source.Source interface.
func (con *Console) Fd() int {
	return con.fd
}

// ReadOne implements the source.Source interface. If the character is mapped
// to a button then ReadOne() will not return until the button has been
// released.
func (con *Console) ReadOne() bool {
	if con.fd < 0 {
		return false
	}

	var b [1]byte
	n, err := unix.Read(con.fd, b[:])
	if err != nil {
		if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR) {
			return false
		}
		// the input is unusable (eg. EIO when the terminal has gone away)
		logger.Log(logger.Allow, "console", err)
		con.fd = -1
		return false
	}

	if n == 0 {
		logger.Log(logger.Allow, "console", "end of input")
		con.fd = -1
		return false
	}

	con.tap(rune(b[0]))

	return true
}

func (con *Console) tap(ch rune) {
	player, button, ok := Lookup(ch)
	if !ok {
		return
	}

	con.out.Write(player, button, true)
	time.Sleep(Hold)
	con.out.Write(player, button, false)
}
