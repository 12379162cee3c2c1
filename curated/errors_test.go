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

package curated_test

import (
	"errors"
	"testing"

	"github.com/retcon/retcon/curated"
	"github.com/retcon/retcon/test"
)

const testPattern = "test: %v"
const wrapPattern = "wrap: %v"

func TestIs(t *testing.T) {
	err := curated.Errorf(testPattern, 10)
	test.ExpectEquality(t, err.Error(), "test: 10")
	test.ExpectSuccess(t, curated.IsAny(err))
	test.ExpectSuccess(t, curated.Is(err, testPattern))
	test.ExpectFailure(t, curated.Is(err, wrapPattern))

	// plain errors are never curated
	plain := errors.New("plain")
	test.ExpectFailure(t, curated.IsAny(plain))
	test.ExpectFailure(t, curated.Is(plain, testPattern))
	test.ExpectFailure(t, curated.IsAny(nil))
}

func TestHas(t *testing.T) {
	inner := curated.Errorf(testPattern, "inner")
	outer := curated.Errorf(wrapPattern, inner)

	test.ExpectFailure(t, curated.Is(outer, testPattern))
	test.ExpectSuccess(t, curated.Has(outer, testPattern))
	test.ExpectSuccess(t, curated.Has(outer, wrapPattern))
	test.ExpectFailure(t, curated.Has(outer, "unused"))
}

func TestDuplicateParts(t *testing.T) {
	inner := curated.Errorf("output: %v", "gpio init failed")
	outer := curated.Errorf("output: %v", inner)
	test.ExpectEquality(t, outer.Error(), "output: gpio init failed")

	// duplicates that are not adjacent are retained
	other := curated.Errorf("a: b: a: %v", "c")
	test.ExpectEquality(t, other.Error(), "a: b: a: c")
}

func TestUnwrap(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := curated.Errorf(wrapPattern, sentinel)
	test.ExpectSuccess(t, errors.Is(err, sentinel))
}
