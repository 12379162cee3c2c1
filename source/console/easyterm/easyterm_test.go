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

package easyterm_test

import (
	"os"
	"testing"

	"github.com/retcon/retcon/curated"
	"github.com/retcon/retcon/source/console/easyterm"
	"github.com/retcon/retcon/test"
)

func TestNotTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	test.DemandSuccess(t, err)
	defer r.Close()
	defer w.Close()

	var pt easyterm.Terminal
	test.DemandSuccess(t, pt.Initialise(r))
	test.ExpectFailure(t, pt.IsTerminal())

	// mode changes do nothing
	test.ExpectSuccess(t, pt.CBreakMode())
	test.ExpectSuccess(t, pt.CanonicalMode())
}

func TestNoInput(t *testing.T) {
	var pt easyterm.Terminal
	err := pt.Initialise(nil)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, easyterm.NoInput))
}
