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

// Package poller is the event loop. Each cycle of the loop connects every
// source that is not yet connected, waits for at least one of the connected
// sources to have input ready and then reads from every ready source until it
// has nothing more to give.
//
// Sources that fail to connect are not an error. The connection is attempted
// again on the next cycle, which happens at least once per Timeout period.
package poller

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sys/unix"

	"github.com/retcon/retcon/curated"
	"github.com/retcon/retcon/source"
)

// Timeout is the maximum length of time a cycle will wait for input.
const Timeout = time.Second

// PollFailed is the error pattern for an unrecoverable failure of the wait.
const PollFailed = "poller: %v"

// events that indicate a source should be read. hangups and errors are
// discovered by the source when it reads
const ready = unix.POLLIN | unix.POLLHUP | unix.POLLERR | unix.POLLNVAL

// Poller services the sources in a Registry.
type Poller struct {
	reg     *source.Registry
	timeout time.Duration

	// the poll set and the source for each entry. reused every cycle
	fds     []unix.PollFd
	sources []source.Source
}

// New is the preferred method of initialisation for the Poller type.
func New(reg *source.Registry) *Poller {
	return &Poller{
		reg:     reg,
		timeout: Timeout,
	}
}

// SetTimeout changes the maximum wait of a cycle from the default value.
func (p *Poller) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

// Cycle runs one cycle of the event loop. An interrupted wait is not an
// error. Any other error is unrecoverable.
func (p *Poller) Cycle() error {
	p.fds = p.fds[:0]
	p.sources = p.sources[:0]

	for _, src := range p.reg.Sources() {
		if !src.Connect() {
			continue
		}
		fd := src.Fd()
		if fd < 0 {
			continue
		}
		p.fds = append(p.fds, unix.PollFd{Fd: int32(fd), Events: unix.POLLIN})
		p.sources = append(p.sources, src)
	}

	n, err := unix.Poll(p.fds, int(p.timeout.Milliseconds()))
	if err != nil {
		if errors.Is(err, unix.EINTR) {
			return nil
		}
		return curated.Errorf(PollFailed, err)
	}

	if n == 0 {
		return nil
	}

	for i, fd := range p.fds {
		if fd.Revents&ready == 0 {
			continue
		}
		src := p.sources[i]
		for src.ReadOne() {
		}
	}

	return nil
}

// Run cycles the event loop until the context is cancelled or until there is
// an error. Cancellation is noticed between cycles.
func (p *Poller) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if err := p.Cycle(); err != nil {
			return err
		}
	}
}
