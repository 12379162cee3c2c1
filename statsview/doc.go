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

// Package statsview is an optional package that is only built when the
// statsview build tag is present:
//
//	go build -tags statsview .
//
// It launches a local HTTP server offering runtime statistics, which is
// useful for watching the poll loop's memory and goroutine behaviour on the
// target hardware. Underlying functionality is provided by
// "github.com/go-echarts/statsview"
//
// After launch, graphs are viewable at:
//
//	localhost:12660/debug/statsview
//
// And the standard Go pprof statistics are available at:
//
//	localhost:12660/debug/pprof/
package statsview
