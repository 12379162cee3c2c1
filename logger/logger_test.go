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

package logger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/retcon/retcon/logger"
	"github.com/retcon/retcon/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	w.Reset()

	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeats(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "output", "P1 button A")
	log.Log(logger.Allow, "output", "P1 button A")
	log.Log(logger.Allow, "output", "P1 button A")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "output: P1 button A (repeat x3)\n")

	// a different entry breaks the run
	w.Reset()
	log.Log(logger.Allow, "output", "P1 button B")
	log.Log(logger.Allow, "output", "P1 button A")
	log.Tail(w, 2)
	test.ExpectEquality(t, w.String(), "output: P1 button B\noutput: P1 button A\n")
}

func TestMaximumEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", "1")
	log.Log(logger.Allow, "b", "2")
	log.Log(logger.Allow, "c", "3")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "b: 2\nc: 3\n")
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Flag(false), "tag", "detail")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Flag(true), "tag", "detail")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: detail\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)
	echo := &test.CompareWriter{}
	log.SetEcho(echo)

	log.Logf(logger.Allow, "joystick", "connected: %s", "/dev/input/js0")
	test.ExpectSuccess(t, echo.Compare("joystick: connected: /dev/input/js0\n"))

	// repeated entries are echoed with the repeat count
	echo.Clear()
	log.Logf(logger.Allow, "joystick", "connected: %s", "/dev/input/js0")
	test.ExpectSuccess(t, echo.Compare("joystick: connected: /dev/input/js0 (repeat x2)\n"))

	// echo can be turned off
	echo.Clear()
	log.SetEcho(nil)
	log.Log(logger.Allow, "tag", "silent")
	test.ExpectSuccess(t, echo.Compare(""))
}

type stringerTest struct{}

func (_ stringerTest) String() string {
	return "stringer test"
}

func TestDetailTypes(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", errors.New("test error"))
	log.Log(logger.Allow, "tag", stringerTest{})
	log.Log(logger.Allow, "tag", 100)
	log.Logf(logger.Allow, "tag", "wrapped: %v", errors.New("test error"))
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\ntag: stringer test\ntag: 100\ntag: wrapped: test error\n")
}
