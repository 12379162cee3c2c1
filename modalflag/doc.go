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

// Package modalflag wraps the flag package of the standard library so that a
// program can offer several modes of operation, each with its own set of
// flags.
//
// Arguments are set with NewArgs() and then parsed with Parse(), which takes
// no arguments:
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "PINS", "EVENTS")
//	p, err := md.Parse()
//
// When sub-modes have been added, Parse() looks at the first argument after
// the flags. If it names one of the sub-modes (case insensitive) that becomes
// the mode, otherwise the first sub-mode in the list is used as the default.
// The selected mode is returned by Mode().
//
// Once a mode has been selected, NewMode() starts a new set of flags for the
// remaining arguments:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		debug := md.AddBool("debug", false, "log raw input events")
//		p, err := md.Parse()
//		...
//	}
//
// Help messages are printed to the Output field when the -help flag is given
// and Parse() returns ParseHelp.
package modalflag
