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

package output_test

import (
	"errors"
	"strings"
	"testing"

	"periph.io/x/conn/v3/gpio"

	"github.com/retcon/retcon/curated"
	"github.com/retcon/retcon/logger"
	"github.com/retcon/retcon/output"
	"github.com/retcon/retcon/test"
)

func TestPins(t *testing.T) {
	pins := output.Pins()
	test.DemandEquality(t, len(pins), 16)

	// every line is used exactly once
	used := make(map[output.Line]bool)
	for _, p := range pins {
		test.ExpectFailure(t, used[p.Line], p.Player, p.Button)
		used[p.Line] = true
	}

	l, ok := output.LineFor(output.P1, output.Up)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, l, output.Line(14))

	l, ok = output.LineFor(output.P2, output.Start)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, l, output.Line(10))

	_, ok = output.LineFor(output.Player(3), output.Up)
	test.ExpectFailure(t, ok)
}

func TestSinkInitialisation(t *testing.T) {
	drv := output.NewDryRunDriver()

	// make sure a line is high before the sink is created
	l, err := drv.Line(7)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, l.Out(gpio.High))

	_, err = output.NewSink(drv)
	test.DemandSuccess(t, err)

	// all lines are driven low on initialisation
	for _, p := range output.Pins() {
		test.ExpectEquality(t, drv.Level(p.Line), gpio.Low, p.Player, p.Button)
	}
}

func TestSinkWrite(t *testing.T) {
	drv := output.NewDryRunDriver()
	sink, err := output.NewSink(drv)
	test.DemandSuccess(t, err)

	for _, p := range output.Pins() {
		sink.Write(p.Player, p.Button, true)
		test.ExpectEquality(t, drv.Level(p.Line), gpio.High, p.Player, p.Button)
		test.ExpectEquality(t, sink.Level(p.Player, p.Button), gpio.High, p.Player, p.Button)

		sink.Write(p.Player, p.Button, false)
		test.ExpectEquality(t, drv.Level(p.Line), gpio.Low, p.Player, p.Button)
	}

	// redundant writes are fine
	sink.Write(output.P2, output.C, true)
	sink.Write(output.P2, output.C, true)
	test.ExpectEquality(t, drv.Level(4), gpio.High)

	sink.Close()
	test.ExpectEquality(t, drv.Level(4), gpio.Low)
}

func TestSinkLogging(t *testing.T) {
	sink, err := output.NewSink(output.NewDryRunDriver())
	test.DemandSuccess(t, err)

	w := &strings.Builder{}

	sink.Write(output.P1, output.A, true)
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "output: P1 button A\n")

	// deasserting is not logged
	w.Reset()
	sink.Write(output.P2, output.B, true)
	sink.Write(output.P2, output.B, false)
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "output: P2 button B\n")
}

func TestSinkMissingLine(t *testing.T) {
	sink, err := output.NewSink(output.NewDryRunDriver())
	test.DemandSuccess(t, err)

	defer func() {
		test.ExpectInequality(t, recover(), nil)
	}()
	sink.Write(output.Player(0), output.A, true)
}

type failingDriver struct {
	init error
	line output.Line
}

func (drv failingDriver) Init() error {
	return drv.init
}

func (drv failingDriver) Line(l output.Line) (gpio.PinIO, error) {
	if l == drv.line {
		return nil, curated.Errorf(output.LineUnavailable, l)
	}
	return output.NewDryRunDriver().Line(l)
}

func TestSinkFailure(t *testing.T) {
	_, err := output.NewSink(failingDriver{init: errors.New("no hardware")})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, output.InitFailed))
	test.ExpectEquality(t, err.Error(), "output: gpio init failed: no hardware")

	_, err = output.NewSink(failingDriver{line: 25})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, output.LineUnavailable))
}

func TestPeriphDriverFailure(t *testing.T) {
	sink, err := output.NewSink(output.PeriphDriver{})
	if err == nil {
		sink.Close()
		t.Skip("GPIO hardware is present")
	}

	// the cause of the failure survives the wrapping by NewSink()
	test.ExpectSuccess(t, curated.Is(err, output.InitFailed))
	test.ExpectSuccess(t, curated.Has(err, output.NoController) || curated.Has(err, output.HostFailed))
}

func TestStrings(t *testing.T) {
	test.ExpectEquality(t, output.P1.String(), "P1")
	test.ExpectEquality(t, output.P2.String(), "P2")
	test.ExpectEquality(t, output.Start.String(), "START")
	test.ExpectEquality(t, output.Button(99).String(), "button(99)")
}
