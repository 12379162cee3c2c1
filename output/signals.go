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

package output

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// signals used to suspend and background the process from an interactive
// shell. these must be left at their default disposition so that job control
// works normally, whatever a hardware library may have installed
var jobControl = []os.Signal{
	unix.SIGCONT, unix.SIGTSTP, unix.SIGTTIN, unix.SIGTTOU,
}

func resetJobControl() {
	signal.Reset(jobControl...)
}
