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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/retcon/retcon/curated"
	"github.com/retcon/retcon/logger"
	"github.com/retcon/retcon/modalflag"
	"github.com/retcon/retcon/output"
	"github.com/retcon/retcon/poller"
	"github.com/retcon/retcon/source"
	"github.com/retcon/retcon/source/console"
	"github.com/retcon/retcon/source/joystick"
	"github.com/retcon/retcon/statsview"
	"github.com/retcon/retcon/version"
)

// default device paths for each player
const (
	defaultP1 = "/dev/input/js0"
	defaultP2 = "/dev/input/js1"
)

// error patterns for problems with the command line
const (
	tooManyArgs          = "too many arguments for %s mode"
	statsviewUnavailable = "statsview not available in this build (use -tags statsview)"
)

// the exit value used for all errors
const errorExit = 10

func main() {
	os.Exit(launch(os.Args[1:]))
}

// launch returns the exit value for the process. every deferred function in
// the selected mode will have run by the time it returns.
func launch(args []string) int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "PINS", "EVENTS")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(os.Stderr, "* error: %v\n", err)
		return errorExit
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "PINS":
		err = pins(md, os.Stdout)

	case "EVENTS":
		err = events(md, os.Stdout)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "* error: %v\n", err)
		return errorExit
	}

	return 0
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	p1 := md.AddString("p1", defaultP1, "joystick device for player one (empty to disable)")
	p2 := md.AddString("p2", defaultP2, "joystick device for player two (empty to disable)")
	dryrun := md.AddBool("dryrun", false, "drive in-memory output lines instead of the GPIO hardware")
	debug := md.AddBool("debug", false, "log raw joystick events")
	stats := md.AddBool("statsview", false, "run the runtime statistics server")
	ver := md.AddBool("version", false, "print version information and exit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *ver {
		fmt.Println(version.String())
		return nil
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(tooManyArgs, md)
	}

	if *stats && !statsview.Available() {
		return curated.Errorf(statsviewUnavailable)
	}

	logger.SetEcho(os.Stderr)
	logger.Logf(logger.Allow, "retcon", "%s flags: %s", md, setFlags(md))

	if *stats {
		statsview.Launch()
	}

	var drv output.Driver = output.PeriphDriver{}
	if *dryrun {
		drv = output.NewDryRunDriver()
	}

	sink, err := output.NewSink(drv)
	if err != nil {
		return err
	}
	defer sink.Close()

	var sources []source.Source

	for _, js := range []struct {
		player output.Player
		path   string
	}{
		{player: output.P1, path: *p1},
		{player: output.P2, path: *p2},
	} {
		if js.path == "" {
			continue
		}
		j := joystick.NewJoystick(sink, js.player, js.path, joystick.PS3())
		j.SetDebug(*debug)
		defer j.Close()
		sources = append(sources, j)
	}

	con, err := console.NewConsole(sink, os.Stdin)
	if err != nil {
		return err
	}
	defer con.Close()
	sources = append(sources, con)

	reg := source.NewRegistry(sources...)

	// interrupt and termination signals cancel the context so that the
	// deferred functions above always run
	ctx, stop := signal.NotifyContext(context.Background(), unix.SIGINT, unix.SIGTERM, unix.SIGHUP)
	defer stop()

	logger.Logf(logger.Allow, "retcon", "%s with %s", version.ApplicationName, reg)

	return poller.New(reg).Run(ctx)
}

// setFlags lists the flags given on the command line for the current mode.
func setFlags(md *modalflag.Modes) string {
	var set []string
	md.Visit(func(flag string) {
		set = append(set, "-"+flag)
	})
	if len(set) == 0 {
		return "none"
	}
	return strings.Join(set, " ")
}

// pins prints the output line assignment.
func pins(md *modalflag.Modes, w io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(tooManyArgs, md)
	}

	for _, pin := range output.Pins() {
		fmt.Fprintf(w, "%s %-5s GPIO%d\n", pin.Player, pin.Button, pin.Line)
	}

	return nil
}

// events prints the events read from a joystick device and the output that
// the event would produce.
func events(md *modalflag.Modes, w io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("The device path defaults to " + defaultP1)

	limit := md.AddInt("n", 0, "stop after this many events (0 for no limit)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	path := defaultP1
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		path = md.GetArg(0)
	default:
		return curated.Errorf(tooManyArgs, md)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return dump(f, w, joystick.PS3(), *limit)
}

// dump decodes events from r until the end of the input or until limit events
// have been printed. a limit of zero means no limit.
func dump(r io.Reader, w io.Writer, mapping joystick.Mapping, limit int) error {
	b := make([]byte, joystick.EventSize)

	for n := 0; limit == 0 || n < limit; n++ {
		if _, err := io.ReadFull(r, b); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		ev, err := joystick.Decode(b)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "% x  %s%s\n", ev.Encode(), ev, describe(ev, mapping))
	}

	return nil
}

// describe the output an event would produce with the mapping.
func describe(ev joystick.Event, mapping joystick.Mapping) string {
	switch {
	case ev.IsButton():
		if b, ok := mapping.Buttons[ev.Number]; ok {
			if ev.Value != 0 {
				return fmt.Sprintf(" -> %s on", b)
			}
			return fmt.Sprintf(" -> %s off", b)
		}

	case ev.IsAxis():
		if s, ok := mapping.Sticks[ev.Stick()]; ok {
			a := s[ev.SubAxis()]
			switch joystick.Quantize(ev.Value) {
			case joystick.Negative:
				return fmt.Sprintf(" -> %s on, %s off", a.Negative, a.Positive)
			case joystick.Positive:
				return fmt.Sprintf(" -> %s off, %s on", a.Negative, a.Positive)
			default:
				return fmt.Sprintf(" -> %s off, %s off", a.Negative, a.Positive)
			}
		}
	}

	return ""
}
