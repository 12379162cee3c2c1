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

// Package test contains helper functions to remove common boilerplate from
// tests.
//
// The Expect functions report a failure with t.Errorf() and allow the test
// to continue. The Demand functions stop the test with t.Fatalf() and should
// be used when later parts of a test depend on the value being correct.
//
// Success and failure are judged according to the type of the value. A bool
// is successful if it is true, an error is successful if it is nil. An
// untyped nil is considered a success because that is how a nil error
// arrives when passed through an argument of type any.
//
// The CompareWriter type implements io.Writer and is used to capture output
// for comparison against expected strings.
package test
