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

// Package joystick implements an input source for Linux joystick device nodes
// (/dev/input/jsN).
//
// The device delivers fixed size events, each describing a change to one
// button or to one axis of an analog stick. Events are translated to output
// writes through a Mapping. The PS3() mapping describes a PlayStation 3
// controller paired over bluetooth.
//
// Analog sticks are treated as alternative direction pads. An axis value is
// quantized into one of three zones with Quantize() and both of the outputs
// associated with the axis are written for every axis event.
//
// The device node is opened without blocking. If the node does not exist,
// or disappears because the controller has been switched off, the source
// reports that it is not connected and the poller will try again later.
package joystick
