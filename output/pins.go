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

// Line identifies a physical output line by its BCM GPIO number.
type Line int

// pinMap is the fixed assignment of lines to buttons for each player.
var pinMap = map[Player]map[Button]Line{
	P1: {
		Up:    14,
		Down:  24,
		Left:  23,
		Right: 18,
		A:     7,
		B:     8,
		C:     25,
		Start: 15,
	},
	P2: {
		Up:    9,
		Down:  17,
		Left:  27,
		Right: 22,
		A:     2,
		B:     3,
		C:     4,
		Start: 10,
	},
}

// Pin describes the line used for one player's button.
type Pin struct {
	Player Player
	Button Button
	Line   Line
}

// Pins returns the complete line assignment, ordered by player and then by
// button.
func Pins() []Pin {
	pins := make([]Pin, 0, len(Players)*len(Buttons))
	for _, p := range Players {
		for _, b := range Buttons {
			pins = append(pins, Pin{Player: p, Button: b, Line: pinMap[p][b]})
		}
	}
	return pins
}

// LineFor returns the line assigned to the player's button. The second return
// value is false if there is no such assignment.
func LineFor(player Player, button Button) (Line, bool) {
	m, ok := pinMap[player]
	if !ok {
		return 0, false
	}
	l, ok := m[button]
	return l, ok
}
