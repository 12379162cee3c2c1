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

package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retcon/retcon/modalflag"
	"github.com/retcon/retcon/source/joystick"
	"github.com/retcon/retcon/statsview"
	"github.com/retcon/retcon/test"
)

func TestPins(t *testing.T) {
	md := &modalflag.Modes{}
	md.NewArgs([]string{})

	w := &strings.Builder{}
	test.DemandSuccess(t, pins(md, w))

	lines := strings.Split(strings.TrimSpace(w.String()), "\n")
	test.DemandEquality(t, len(lines), 16)
	test.ExpectEquality(t, lines[0], "P1 UP    GPIO14")
	test.ExpectEquality(t, lines[15], "P2 START GPIO10")
}

func TestDump(t *testing.T) {
	var b bytes.Buffer
	b.Write(joystick.Event{Time: 1, Value: 1, Type: joystick.TypeButton, Number: 15}.Encode())
	b.Write(joystick.Event{Time: 2, Value: -30000, Type: joystick.TypeAxis, Number: 1}.Encode())
	b.Write(joystick.Event{Time: 3, Value: 1, Type: joystick.TypeButton, Number: 16}.Encode())

	w := &strings.Builder{}
	test.DemandSuccess(t, dump(&b, w, joystick.PS3(), 0))

	lines := strings.Split(strings.TrimSpace(w.String()), "\n")
	test.DemandEquality(t, len(lines), 3)
	test.ExpectEquality(t, lines[0], "01 00 00 00 01 00 01 0f  button 15 value 1 -> A on")
	test.ExpectEquality(t, lines[1], "02 00 00 00 d0 8a 02 01  axis 1 (stick 0/1) value -30000 -> LEFT on, RIGHT off")
	test.ExpectEquality(t, lines[2], "03 00 00 00 01 00 01 10  button 16 value 1")
}

func TestDumpLimit(t *testing.T) {
	var b bytes.Buffer
	for i := 0; i < 5; i++ {
		b.Write(joystick.Event{Value: 0, Type: joystick.TypeButton, Number: 4}.Encode())
	}

	w := &strings.Builder{}
	test.DemandSuccess(t, dump(&b, w, joystick.PS3(), 2))
	test.ExpectEquality(t, strings.Count(w.String(), "\n"), 2)
}

func TestDumpShort(t *testing.T) {
	b := bytes.NewBuffer([]byte{0x01, 0x02, 0x03})
	w := &strings.Builder{}
	test.ExpectFailure(t, dump(b, w, joystick.PS3(), 0))
	test.ExpectEquality(t, w.Len(), 0)
}

func TestLaunch(t *testing.T) {
	test.ExpectEquality(t, launch([]string{"PINS", "extra"}), errorExit)
	test.ExpectEquality(t, launch([]string{"EVENTS", filepath.Join(t.TempDir(), "missing")}), errorExit)
	test.ExpectEquality(t, launch([]string{"-nosuchflag"}), errorExit)
}

func TestSetFlags(t *testing.T) {
	md := &modalflag.Modes{}
	md.NewArgs([]string{"-p2", "", "-dryrun"})
	md.AddBool("dryrun", false, "")
	md.AddString("p1", defaultP1, "")
	md.AddString("p2", defaultP2, "")
	_, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, setFlags(md), "-dryrun -p2")

	md.NewArgs([]string{})
	_, err = md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, setFlags(md), "none")
}

func TestStatsviewUnavailable(t *testing.T) {
	if statsview.Available() {
		t.Skip("statsview is available in this build")
	}

	// the flag is rejected before any hardware is touched
	test.ExpectEquality(t, launch([]string{"-statsview", "-dryrun"}), errorExit)
}
