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

// Package source defines the capability shared by every input source and the
// Registry that holds the sources for the lifetime of the process.
//
// There are two implementations. The joystick package reads a joystick
// device node and the console package reads characters from the terminal.
package source

import "fmt"

// Source is an input that may or may not be connected. Once connected a
// Source holds a non-blocking file descriptor.
type Source interface {
	fmt.Stringer

	// Connect to the input, if not already connected. Returns true if the
	// Source is connected. Connect must never block and must not log
	// anything if the Source is already connected.
	Connect() bool

	// ReadOne consumes and interprets one unit of pending input. Returns true
	// if something was consumed, whether or not it resulted in an output
	// write. Returns false if there was nothing available or if a read
	// error caused the Source to disconnect.
	ReadOne() bool

	// Fd returns the file descriptor to wait on for readiness. Returns -1
	// if the Source is not connected.
	Fd() int
}

// Registry is the ordered collection of all sources. It is built once at
// startup and never changes.
type Registry struct {
	sources []Source
}

// NewRegistry is the preferred method of initialisation for the Registry
// type. The order of the sources is the order in which they are connected
// and serviced.
func NewRegistry(sources ...Source) *Registry {
	reg := &Registry{
		sources: make([]Source, 0, len(sources)),
	}
	for _, s := range sources {
		if s != nil {
			reg.sources = append(reg.sources, s)
		}
	}
	return reg
}

// Sources returns the registered sources.
func (reg *Registry) Sources() []Source {
	return reg.sources
}

func (reg *Registry) String() string {
	return fmt.Sprintf("%d sources", len(reg.sources))
}
