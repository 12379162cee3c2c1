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

import "fmt"

// Button is one of the eight controls understood by the console interface.
// These represent the buttons of a Sega Genesis controller.
type Button int

// List of valid Button values.
const (
	Up Button = iota
	Down
	Left
	Right
	A
	B
	C
	Start
)

// Buttons lists every Button in order.
var Buttons = []Button{Up, Down, Left, Right, A, B, C, Start}

func (b Button) String() string {
	switch b {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	case A:
		return "A"
	case B:
		return "B"
	case C:
		return "C"
	case Start:
		return "START"
	}
	return fmt.Sprintf("button(%d)", int(b))
}

// Player identifies one of the two groups of output lines.
type Player int

// List of valid Player values. The values start at one so that they read
// naturally in log output.
const (
	P1 Player = 1
	P2 Player = 2
)

// Players lists every Player in order.
var Players = []Player{P1, P2}

func (p Player) String() string {
	return fmt.Sprintf("P%d", int(p))
}

// Writer is implemented by anything that can drive an output line for a
// player's button. Input sources write to the Sink through this interface.
type Writer interface {
	Write(player Player, button Button, on bool)
}
