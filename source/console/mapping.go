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
	"unicode"

	"github.com/retcon/retcon/output"
)

var keys = map[rune]output.Button{
	'u': output.Up,
	'd': output.Down,
	'l': output.Left,
	'r': output.Right,
	'a': output.A,
	'b': output.B,
	'c': output.C,
	's': output.Start,
}

// Lookup the player and button for a character. Returns false if the
// character is not mapped to a button.
func Lookup(ch rune) (output.Player, output.Button, bool) {
	player := output.P1
	if unicode.IsUpper(ch) {
		player = output.P2
		ch = unicode.ToLower(ch)
	}

	b, ok := keys[ch]
	if !ok {
		return player, 0, false
	}

	return player, b, true
}
