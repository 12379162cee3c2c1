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

// Package output drives the GPIO lines connected to the external circuit that
// interfaces with the game console.
//
// Each Player has eight lines, one for each Button. The assignment of lines
// is fixed and can be seen with the Pins() function. Lines are identified by
// their BCM GPIO number.
//
// The Sink type owns the lines. It is created once with NewSink(), which
// initialises the hardware through a Driver, and is then shared by reference
// with every input source. Input sources only see the Writer interface.
//
// The PeriphDriver uses periph.io to drive the lines of a Raspberry Pi. The
// DryRunDriver keeps the lines in memory and is used for testing on machines
// without the hardware.
package output
