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

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/retcon/retcon/curated"
)

// EventSize is the number of bytes in one event read from the device.
const EventSize = 8

// EventType is a bit field describing the kind of event.
type EventType uint8

// List of EventType bits.
const (
	TypeButton EventType = 0x01
	TypeAxis   EventType = 0x02

	// set in addition to TypeButton or TypeAxis for the synthetic events
	// describing the initial state of the device after it is opened
	TypeInit EventType = 0x80
)

// Event is a single joystick event. The layout of the fields matches the
// js_event structure of the Linux joystick API.
type Event struct {
	Time   uint32
	Value  int16
	Type   EventType
	Number uint8
}

// ShortEvent is returned by Decode() if the data is not the size of an event.
const ShortEvent = "joystick: short event (%d bytes)"

// Decode an event from data read from the device.
func Decode(b []byte) (Event, error) {
	var ev Event
	if len(b) != EventSize {
		return ev, curated.Errorf(ShortEvent, len(b))
	}
	if err := binary.Read(bytes.NewReader(b), binary.LittleEndian, &ev); err != nil {
		return ev, err
	}
	return ev, nil
}

// Encode event into the form delivered by the device.
func (ev Event) Encode() []byte {
	var b bytes.Buffer
	_ = binary.Write(&b, binary.LittleEndian, ev)
	return b.Bytes()
}

// IsButton returns true if the event describes a button.
func (ev Event) IsButton() bool {
	return ev.Type&TypeButton == TypeButton
}

// IsAxis returns true if the event describes an axis of an analog stick.
func (ev Event) IsAxis() bool {
	return ev.Type&TypeAxis == TypeAxis
}

// Stick returns the stick number of an axis event.
func (ev Event) Stick() uint8 {
	return ev.Number >> 1
}

// SubAxis returns which axis of the stick the event describes.
func (ev Event) SubAxis() uint8 {
	return ev.Number & 0x01
}

func (ev Event) String() string {
	switch {
	case ev.IsButton():
		return fmt.Sprintf("button %d value %d", ev.Number, ev.Value)
	case ev.IsAxis():
		return fmt.Sprintf("axis %d (stick %d/%d) value %d", ev.Number, ev.Stick(), ev.SubAxis(), ev.Value)
	}
	return fmt.Sprintf("type %#02x number %d value %d", uint8(ev.Type), ev.Number, ev.Value)
}
