// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package lgclib provides prebuilt sub-circuits for common combinational
// building blocks. Each constructor adds its gates to an existing circuit,
// with names prefixed by the given prefix, and returns the gates of
// interest.
//
package lgclib

import (
	lt "github.com/db47h/logictab"
)

// builder chains Add calls, remembering the first error.
type builder struct {
	c      *lt.Circuit
	prefix string
	err    error
}

func (b *builder) add(name string, t lt.Type, wires ...lt.Wire) *lt.Gate {
	if b.err != nil {
		return nil
	}
	g, err := b.c.Add(b.prefix+name, t, wires...)
	if err != nil {
		b.err = err
	}
	return g
}

// A HalfAdder adds two bits: Sum = A xor B, Carry = A and B.
//
type HalfAdder struct {
	A, B       *lt.Gate // In gates
	Sum, Carry *lt.Gate // Out gates
}

// NewHalfAdder wires a half adder into c.
//
func NewHalfAdder(c *lt.Circuit, prefix string) (*HalfAdder, error) {
	b := &builder{c: c, prefix: prefix}
	sum := b.add("sum", lt.Out)
	carry := b.add("carry", lt.Out)
	x := b.add("xor0", lt.Xor, lt.Wire{To: sum, Port: 0})
	n := b.add("and0", lt.And, lt.Wire{To: carry, Port: 0})
	sa := b.add("splita", lt.Split, lt.Wire{To: x, Port: 0}, lt.Wire{To: n, Port: 0})
	sb := b.add("splitb", lt.Split, lt.Wire{To: x, Port: 1}, lt.Wire{To: n, Port: 1})
	a := b.add("a", lt.In, lt.Wire{To: sa, Port: 0})
	bb := b.add("b", lt.In, lt.Wire{To: sb, Port: 0})
	if b.err != nil {
		return nil, b.err
	}
	return &HalfAdder{A: a, B: bb, Sum: sum, Carry: carry}, nil
}

// Table returns a truth table enumerating the half adder.
//
func (h *HalfAdder) Table() (*lt.TruthTable, error) {
	return lt.NewTruthTable([]*lt.Gate{h.A, h.B}, nil, []*lt.Gate{h.Sum, h.Carry})
}

// A FullAdder adds two bits and a carry in: Sum = A xor B xor Cin,
// Cout = A·B + Cin·(A xor B).
//
type FullAdder struct {
	A, B, Cin *lt.Gate // In gates
	Sum, Cout *lt.Gate // Out gates
}

// NewFullAdder wires a full adder into c.
//
func NewFullAdder(c *lt.Circuit, prefix string) (*FullAdder, error) {
	b := &builder{c: c, prefix: prefix}
	sum := b.add("sum", lt.Out)
	cout := b.add("cout", lt.Out)
	or0 := b.add("or0", lt.Or, lt.Wire{To: cout, Port: 0})
	x2 := b.add("xor1", lt.Xor, lt.Wire{To: sum, Port: 0})
	and0 := b.add("and0", lt.And, lt.Wire{To: or0, Port: 0})
	and1 := b.add("and1", lt.And, lt.Wire{To: or0, Port: 1})
	sx := b.add("splitx", lt.Split, lt.Wire{To: x2, Port: 0}, lt.Wire{To: and1, Port: 1})
	x1 := b.add("xor0", lt.Xor, lt.Wire{To: sx, Port: 0})
	sc := b.add("splitc", lt.Split, lt.Wire{To: x2, Port: 1}, lt.Wire{To: and1, Port: 0})
	cin := b.add("cin", lt.In, lt.Wire{To: sc, Port: 0})
	sa := b.add("splita", lt.Split, lt.Wire{To: x1, Port: 0}, lt.Wire{To: and0, Port: 0})
	a := b.add("a", lt.In, lt.Wire{To: sa, Port: 0})
	sb := b.add("splitb", lt.Split, lt.Wire{To: x1, Port: 1}, lt.Wire{To: and0, Port: 1})
	bb := b.add("b", lt.In, lt.Wire{To: sb, Port: 0})
	if b.err != nil {
		return nil, b.err
	}
	return &FullAdder{A: a, B: bb, Cin: cin, Sum: sum, Cout: cout}, nil
}

// Table returns a truth table enumerating the full adder.
//
func (f *FullAdder) Table() (*lt.TruthTable, error) {
	return lt.NewTruthTable([]*lt.Gate{f.A, f.B, f.Cin}, nil, []*lt.Gate{f.Sum, f.Cout})
}

// A Mux selects between two inputs: Y = A when Sel is false, B when Sel is
// true.
//
type Mux struct {
	A, B, Sel *lt.Gate // In gates
	Y         *lt.Gate // Out gate
}

// NewMux wires a 2-to-1 multiplexer into c.
//
func NewMux(c *lt.Circuit, prefix string) (*Mux, error) {
	b := &builder{c: c, prefix: prefix}
	y := b.add("y", lt.Out)
	or0 := b.add("or0", lt.Or, lt.Wire{To: y, Port: 0})
	and0 := b.add("and0", lt.And, lt.Wire{To: or0, Port: 0})
	and1 := b.add("and1", lt.And, lt.Wire{To: or0, Port: 1})
	not0 := b.add("not0", lt.Not, lt.Wire{To: and0, Port: 1})
	ss := b.add("splits", lt.Split, lt.Wire{To: not0, Port: 0}, lt.Wire{To: and1, Port: 1})
	sel := b.add("sel", lt.In, lt.Wire{To: ss, Port: 0})
	a := b.add("a", lt.In, lt.Wire{To: and0, Port: 0})
	bb := b.add("b", lt.In, lt.Wire{To: and1, Port: 0})
	if b.err != nil {
		return nil, b.err
	}
	return &Mux{A: a, B: bb, Sel: sel, Y: y}, nil
}

// Table returns a truth table enumerating the multiplexer.
//
func (m *Mux) Table() (*lt.TruthTable, error) {
	return lt.NewTruthTable([]*lt.Gate{m.A, m.B, m.Sel}, nil, []*lt.Gate{m.Y})
}
