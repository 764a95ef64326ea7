// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logictab

import (
	"github.com/pkg/errors"
)

// DefaultMaxSteps is the default propagation step budget per stimulus. A
// combinational circuit needs at most one evaluation per gate to settle, so
// any budget not smaller than the gate count is conservative.
//
const DefaultMaxSteps = 1 << 16

// Propagation and construction errors.
//
var (
	// ErrCycle is reported when a single stimulus exceeds the circuit's
	// step budget, which on a well-formed circuit only happens when a
	// feedback path keeps toggling values.
	ErrCycle = errors.New("propagation step budget exceeded (cycle?)")

	// ErrBadPort is reported when a wire targets a port index outside the
	// downstream gate's input range.
	ErrBadPort = errors.New("invalid downstream port")
)

// An Option configures a Circuit.
//
type Option func(*Circuit)

// WithMaxSteps sets the propagation step budget per stimulus.
//
func WithMaxSteps(n int) Option {
	return func(c *Circuit) { c.maxSteps = n }
}

// A Circuit is an arena of gates addressed by name. It owns the gates and
// their wiring; gates alias each other only through indices into the arena.
// A Circuit and its gates must be driven by a single goroutine at a time.
//
type Circuit struct {
	gates    []*Gate
	names    map[string]*Gate
	maxSteps int
}

// New returns an empty circuit.
//
func New(opts ...Option) *Circuit {
	c := &Circuit{
		names:    make(map[string]*Gate),
		maxSteps: DefaultMaxSteps,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Add creates a gate of the given type and name and wires its outputs. The
// number of wires must match the type's fanout (none for Out, two for Split
// and Switch, one otherwise) and every wire must target an existing gate of
// this circuit on a valid port. Downstream gates must therefore be added
// before the gates feeding them; this is what permits an edge to later close
// a cycle, since nothing distinguishes a forward reference from a loop.
//
// True and False gates hold their constant from creation on.
//
func (c *Circuit) Add(name string, t Type, wires ...Wire) (*Gate, error) {
	if t < In || t > Switch {
		return nil, errors.Wrapf(ErrUnknownType, "gate %q", name)
	}
	if _, ok := c.names[name]; ok {
		return nil, errors.Errorf("gate %q redefined", name)
	}
	if len(wires) != t.fanout() {
		return nil, errors.Wrapf(ErrBadArity, "gate %q: %s needs %d output wires, got %d",
			name, t, t.fanout(), len(wires))
	}
	g := &Gate{
		c:    c,
		id:   len(c.gates),
		name: name,
		typ:  t,
		in:   make([]bool, t.arity()),
		out:  make([]bool, t.fanout()),
	}
	for _, w := range wires {
		if w.To == nil || w.To.c != c {
			return nil, errors.Errorf("gate %q: wire target is not part of this circuit", name)
		}
		if w.Port < 0 || w.Port >= w.To.typ.arity() {
			return nil, errors.Wrapf(ErrBadPort, "gate %q: port %d on %s gate %q",
				name, w.Port, w.To.typ, w.To.name)
		}
		g.wires = append(g.wires, wire{to: w.To.id, port: w.Port})
	}
	if t == True {
		g.in[0], g.out[0] = true, true
	}
	c.gates = append(c.gates, g)
	c.names[name] = g
	return g, nil
}

// Gate returns the gate with the given name, or nil if no such gate exists.
// Names are case sensitive.
//
func (c *Circuit) Gate(name string) *Gate {
	return c.names[name]
}

// Size returns the gate count in the circuit.
//
func (c *Circuit) Size() int { return len(c.gates) }
