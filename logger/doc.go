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

// Package logger is the central log for the application. Entries are made up
// of a tag and a detail string and are printed as:
//
//	tag: detail
//
// The central log is accessed through the package level functions. Separate
// instances can be created with NewLogger(), which is useful for testing.
//
// Adjacent entries with the same tag and detail are merged and the number of
// repeats is noted in the output.
//
// Entries can be echoed to an io.Writer as they are made. The main program
// echoes the central log to the diagnostic stream (stderr).
package logger
