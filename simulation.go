package ttlsim

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Tick advances the network one time step. A tick is split into two
// phases: first every Transistor recomputes its pending drain drive from
// the current (pre-tick) readings of its gate and source; only once every
// transistor has done so does the second phase apply those pending drives
// to every transistor's three pins. Returns true if anything changed.
func Tick(root Device) bool {
	changed := tickTransistors(root)
	if tickPins(root) {
		changed = true
	}
	return changed
}

// tickTransistors recurses through the device tree ticking every
// Transistor's compute step. Every sibling is visited regardless of what
// earlier siblings reported, so the "changed" flag is accumulated without
// short-circuiting.
func tickTransistors(d Device) bool {
	changed := false
	if t, ok := d.(*Transistor); ok {
		if t.tick() {
			changed = true
		}
	}
	for _, field := range d.Children() {
		for _, child := range field.Children.Items() {
			if tickTransistors(child) {
				changed = true
			}
		}
	}
	return changed
}

// tickPins recurses through the device tree ticking the three pins of
// every Transistor, making pending drives visible. Like tickTransistors,
// every sibling is always visited.
func tickPins(d Device) bool {
	changed := false
	if t, ok := d.(*Transistor); ok {
		if t.drain.tick() {
			changed = true
		}
		if t.gate.tick() {
			changed = true
		}
		if t.source.tick() {
			changed = true
		}
	}
	for _, field := range d.Children() {
		for _, child := range field.Children.Items() {
			if tickPins(child) {
				changed = true
			}
		}
	}
	return changed
}

// Settle ticks the device repeatedly until a tick reports no change,
// returning how many ticks that took. Networks without a stable attractor
// (a ring of an odd number of NOT gates with one node weakly pulled, say)
// make this loop forever; that is the caller's responsibility to avoid. Use
// SettleBounded when an upper bound is wanted instead.
func Settle(root Device) int {
	ticks := 0
	for Tick(root) {
		ticks++
	}
	return ticks
}

// SettleBounded behaves like Settle but gives up after maxTicks ticks
// without reaching a fixed point, reporting settled=false rather than
// silently returning a tick count that doesn't reflect a quiescent network.
func SettleBounded(root Device, maxTicks int) (ticks int, settled bool) {
	for ticks = 0; ticks < maxTicks; ticks++ {
		if !Tick(root) {
			return ticks, true
		}
	}
	return ticks, false
}

// Print writes a recursive, YAML-shaped dump of device to w: its type, its
// pins (with drive, resolved read, pointer identity, and the identities of
// every pin it's connected to), and its children. Indentation follows
// level, and isArrayMember controls whether this device is rendered as a
// sequence entry.
func Print(w io.Writer, device Device, level int, isArrayMember bool) error {
	pad := func(n int) string {
		if n < 0 {
			n = 0
		}
		return strings.Repeat(" ", n)
	}

	var err error
	writeln := func(format string, args ...interface{}) {
		if err != nil {
			return
		}
		_, werr := fmt.Fprintf(w, format+"\n", args...)
		if werr != nil {
			err = errors.Wrap(werr, "ttlsim: print device")
		}
	}

	if isArrayMember {
		writeln("%s- type: %s", pad(level-2), device.TypeName())
	} else {
		writeln("%stype: %s", pad(level), device.TypeName())
	}

	pins := device.Pins()
	if len(pins) > 0 {
		writeln("%spins:", pad(level))
	}
	for _, field := range pins {
		writeln("%s%s:", pad(level+2), field.Name)
		for _, p := range field.Pins.Items() {
			writeln("%sdrive: %+v", pad(level+4), p.Drive())
			writeln("%sread: %+v", pad(level+4), p.Read())
			writeln("%sid: %p", pad(level+4), p)
			writeln("%sconnected:", pad(level+4))
			for _, cp := range p.ConnectedPins() {
				writeln("%s- %p", pad(level+6), cp)
			}
		}
	}

	children := device.Children()
	if len(children) > 0 {
		writeln("%schildren:", pad(level))
	}
	for _, field := range children {
		writeln("%s%s:", pad(level+2), field.Name)
		if field.Children.IsSingle() {
			for _, child := range field.Children.Items() {
				if err == nil {
					err = Print(w, child, level+4, false)
				}
			}
		} else {
			for _, child := range field.Children.Items() {
				if err == nil {
					err = Print(w, child, level+6, true)
				}
			}
		}
	}

	return err
}
