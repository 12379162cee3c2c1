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

// Package curated provides error values that are identified by the pattern
// they were created with rather than by their formatted text.
//
// Errors are created with Errorf(), which has the same signature as the
// Errorf() function in the fmt package. The pattern argument doubles as the
// identity of the error. Patterns worth testing for should be exported as
// const strings by the package that produces them. For example:
//
//	const OpenFailed = "open failed: %v"
//
//	err := curated.Errorf(OpenFailed, path)
//	if curated.Is(err, OpenFailed) {
//		...
//	}
//
// Has() answers the same question but searches the whole chain of curated
// errors passed as values to Errorf().
//
// Formatting an error normalises the chain of messages so that adjacent
// parts that are identical are only printed once. A chain is a series of
// parts separated by ": ". This means that wrapping an error at every level
// of a call stack with the same prefix does not result in output such as:
//
//	output: output: gpio init failed
package curated
