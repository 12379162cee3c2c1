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

// Package console is an input source that reads single characters from the
// terminal. It is intended for testing the wiring of the output lines when no
// joystick is available.
//
// A lowercase letter operates a button for player one and an uppercase letter
// operates the same button for player two. See Lookup() for the list of
// letters. Each keypress is a short tap of the button: the output is asserted,
// held for the duration of Hold and then deasserted.
//
// The terminal is put into cbreak mode by NewConsole() so that keypresses are
// delivered without waiting for the return key and without being echoed.
// Close() must be called to return the terminal to normal.
package console
