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

//go:build !statsview

package statsview

import "github.com/retcon/retcon/logger"

// Launch does nothing except log that the server is not available.
func Launch() {
	logger.Log(logger.Allow, "statsview", "not available in this build (use -tags statsview)")
}

// Available returns false because the statsview build tag is not present.
func Available() bool {
	return false
}
