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

package joystick

import "github.com/retcon/retcon/output"

// Zone is the result of quantizing an axis value.
type Zone int

// List of valid Zone values.
const (
	Neutral Zone = iota
	Negative
	Positive
)

func (z Zone) String() string {
	switch z {
	case Negative:
		return "negative"
	case Positive:
		return "positive"
	}
	return "neutral"
}

// Threshold is the magnitude an axis value must exceed to leave the
// neutral zone.
const Threshold = 20000

// Quantize an axis value into a Zone. Values in the closed range
// [-Threshold, Threshold] are Neutral.
func Quantize(v int16) Zone {
	switch {
	case v < -Threshold:
		return Negative
	case v > Threshold:
		return Positive
	}
	return Neutral
}

// AxisOutputs names the outputs for the negative and positive ends of one
// axis.
type AxisOutputs struct {
	Negative output.Button
	Positive output.Button
}

// StickOutputs are the outputs for each axis of an analog stick, indexed by
// the sub-axis of the event.
type StickOutputs [2]AxisOutputs

// Mapping translates device events to output buttons. Event numbers that are
// not in the mapping are ignored.
type Mapping struct {
	// button number to output
	Buttons map[uint8]output.Button

	// stick number to outputs
	Sticks map[uint8]StickOutputs
}

// PS3 button numbers.
const (
	ps3Select uint8 = iota
	ps3L3
	ps3R3
	ps3Start
	ps3Up
	ps3Right
	ps3Down
	ps3Left
	ps3L2
	ps3R2
	ps3L1
	ps3R1
	ps3Triangle
	ps3Circle
	ps3X
	ps3Square
	ps3PS
)

// PS3 stick numbers.
const (
	ps3LeftAnalog uint8 = iota
	ps3RightAnalog
)

// PS3 returns the Mapping for a PlayStation 3 controller. Not every button
// is mapped. R2 is an alternative for C and TRIANGLE is an alternative for
// START. The left analog stick is an alternative for the direction pad.
//
// A new Mapping is created on every call.
func PS3() Mapping {
	return Mapping{
		Buttons: map[uint8]output.Button{
			ps3Up:       output.Up,
			ps3Right:    output.Right,
			ps3Down:     output.Down,
			ps3Left:     output.Left,
			ps3Square:   output.A,
			ps3X:        output.B,
			ps3Circle:   output.C,
			ps3R2:       output.C,
			ps3Start:    output.Start,
			ps3Triangle: output.Start,
		},
		Sticks: map[uint8]StickOutputs{
			ps3LeftAnalog: {
				{Negative: output.Up, Positive: output.Down},
				{Negative: output.Left, Positive: output.Right},
			},
		},
	}
}
