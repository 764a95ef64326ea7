// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logictab

import (
	"strings"

	"github.com/pkg/errors"
)

// A Type identifies a gate variant.
//
type Type int

// Gate variants.
//
const (
	In Type = iota
	Out
	True
	False
	And
	Or
	Xor
	Nand
	Nor
	Xnor
	Not
	Diode
	Split
	Switch
)

var typeNames = [...]string{
	In:     "IN",
	Out:    "OUT",
	True:   "TRUE",
	False:  "FALSE",
	And:    "AND",
	Or:     "OR",
	Xor:    "XOR",
	Nand:   "NAND",
	Nor:    "NOR",
	Xnor:   "XNOR",
	Not:    "NOT",
	Diode:  "DIODE",
	Split:  "SPLIT",
	Switch: "SWITCH",
}

func (t Type) String() string {
	if t < In || t > Switch {
		return "UNKNOWN"
	}
	return typeNames[t]
}

// ParseType returns the gate type named by s. Type names are matched case
// insensitively.
//
func ParseType(s string) (Type, error) {
	u := strings.ToUpper(s)
	for t, n := range typeNames {
		if n == u {
			return Type(t), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownType, "%q", s)
}

// arity returns the number of input ports of a gate of type t.
//
func (t Type) arity() int {
	switch t {
	case And, Or, Xor, Nand, Nor, Xnor:
		return 2
	default:
		return 1
	}
}

// fanout returns the number of output wires of a gate of type t.
//
func (t Type) fanout() int {
	switch t {
	case Out:
		return 0
	case Split, Switch:
		return 2
	default:
		return 1
	}
}

// A Wire connects a gate output to input port Port of gate To.
//
type Wire struct {
	To   *Gate
	Port int
}

// wire is the arena form of Wire: edges are stored as plain index pairs so
// that aliasing and cycles are a property of the index graph, not of live
// references.
type wire struct {
	to   int
	port int
}

// A Gate is a node in a circuit. It holds one boolean slot per input port,
// one output slot per outgoing wire, and pushes its outputs downstream when
// evaluated. Gates are created with Circuit.Add and are only safe for use by
// a single goroutine at a time: evaluation mutates input slots of shared
// downstream gates in place.
//
type Gate struct {
	c     *Circuit
	id    int
	name  string
	typ   Type
	in    []bool
	out   []bool
	wires []wire
	dir   bool // Switch only: false routes to wire 0, true to wire 1
}

// Name returns the gate name used in descriptions and table headers.
//
func (g *Gate) Name() string { return g.name }

// Type returns the gate variant.
//
func (g *Gate) Type() Type { return g.typ }

func (g *Gate) String() string { return g.name }

// SetInput sets input port p to value v. It does not trigger evaluation.
// p must be a valid port index for the gate's type.
//
func (g *Gate) SetInput(p int, v bool) {
	g.in[p] = v
}

// Evaluate computes the gate's outputs from its current inputs and
// propagates them downstream. The whole reachable subgraph settles before
// Evaluate returns. It fails with an error wrapping ErrCycle if propagation
// exceeds the circuit's step budget.
//
func (g *Gate) Evaluate() error {
	steps := g.c.maxSteps
	return g.eval(&steps)
}

// Propagate pushes the current output slots downstream without recomputing
// them, evaluating each downstream gate in wire order: everything reachable
// through wire 0 settles before wire 1 is touched.
//
func (g *Gate) Propagate() error {
	steps := g.c.maxSteps
	return g.send(&steps)
}

// Toggle drives a source gate. For In gates v becomes the emitted value, for
// Switch gates v becomes the routing direction (false selects wire 0, true
// wire 1). Other types cannot be toggled. Toggling propagates.
//
func (g *Gate) Toggle(v bool) error {
	switch g.typ {
	case In:
		g.in[0] = v
		g.out[0] = v
		steps := g.c.maxSteps
		return g.send(&steps)
	case Switch:
		g.dir = v
		return g.Evaluate()
	default:
		return errors.Errorf("gate %q: %s gates cannot be toggled", g.name, g.typ)
	}
}

// StateName returns the one-token state code used in truth tables: "T" or
// "F" keyed on the primary input for boolean-valued gates, "L" or "R" keyed
// on the direction for Switch gates.
//
func (g *Gate) StateName() string {
	if g.typ == Switch {
		if g.dir {
			return "R"
		}
		return "L"
	}
	if g.in[0] {
		return "T"
	}
	return "F"
}

// eval computes the output slots from the input slots and sends them
// downstream, decrementing *steps once per gate visited.
func (g *Gate) eval(steps *int) error {
	if *steps <= 0 {
		return errors.Wrapf(ErrCycle, "gate %q", g.name)
	}
	*steps--

	a := g.in[0]
	switch g.typ {
	case Out:
		// terminal sink, never propagates
		return nil
	case In, True, False:
		g.out[0] = a
	case And:
		g.out[0] = a && g.in[1]
	case Or:
		g.out[0] = a || g.in[1]
	case Xor:
		g.out[0] = a != g.in[1]
	case Nand:
		g.out[0] = !(a && g.in[1])
	case Nor:
		g.out[0] = !(a || g.in[1])
	case Xnor:
		g.out[0] = a == g.in[1]
	case Not:
		g.out[0] = !a
	case Diode:
		g.out[0] = a
	case Split:
		g.out[0] = a
		g.out[1] = a
	case Switch:
		// the non-selected branch is forced low, never held
		if g.dir {
			g.out[1] = a
			g.out[0] = false
		} else {
			g.out[0] = a
			g.out[1] = false
		}
	}
	return g.send(steps)
}

// send writes each output slot into its wired downstream port and evaluates
// the downstream gate, in ascending wire order. The ordering is observable
// in circuits with switches and must not change.
func (g *Gate) send(steps *int) error {
	for i, w := range g.wires {
		dst := g.c.gates[w.to]
		dst.in[w.port] = g.out[i]
		if err := dst.eval(steps); err != nil {
			return err
		}
	}
	return nil
}
