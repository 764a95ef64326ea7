package logictab_test

import (
	"testing"
	"testing/quick"

	lt "github.com/db47h/logictab"
	"github.com/pkg/errors"
)

// probe builds a minimal circuit around a single gate of type typ: one Out
// sink per gate output, the gate itself driven through SetInput.
func probe(t *testing.T, typ lt.Type) (g *lt.Gate, outs []*lt.Gate) {
	t.Helper()
	c := lt.New()
	var wires []lt.Wire
	for i := 0; i < 2; i++ {
		o, err := c.Add(string(rune('x'+i)), lt.Out)
		if err != nil {
			t.Fatal(err)
		}
		outs = append(outs, o)
		wires = append(wires, lt.Wire{To: o, Port: 0})
	}
	switch typ {
	case lt.Split, lt.Switch:
	default:
		wires = wires[:1]
		outs = outs[:1]
	}
	g, err := c.Add("g", typ, wires...)
	if err != nil {
		t.Fatal(err)
	}
	return g, outs
}

func Test_gate_variants(t *testing.T) {
	td := []struct {
		typ    lt.Type
		inputs int
		result []bool // outputs for inputs 00, 01, 10, 11 (or 0, 1)
	}{
		{lt.And, 2, []bool{false, false, false, true}},
		{lt.Or, 2, []bool{false, true, true, true}},
		{lt.Xor, 2, []bool{false, true, true, false}},
		{lt.Nand, 2, []bool{true, true, true, false}},
		{lt.Nor, 2, []bool{true, false, false, false}},
		{lt.Xnor, 2, []bool{true, false, false, true}},
		{lt.Not, 1, []bool{true, false}},
		{lt.Diode, 1, []bool{false, true}},
	}
	for _, d := range td {
		t.Run(d.typ.String(), func(t *testing.T) {
			g, outs := probe(t, d.typ)
			for i := 0; i < 1<<uint(d.inputs); i++ {
				for bit := 0; bit < d.inputs; bit++ {
					g.SetInput(bit, i&(1<<uint(d.inputs-bit-1)) != 0)
				}
				if err := g.Evaluate(); err != nil {
					t.Fatal(err)
				}
				want := "F"
				if d.result[i] {
					want = "T"
				}
				if got := outs[0].StateName(); got != want {
					t.Errorf("%s case %d: expected %s, got %s", d.typ, i, want, got)
				}
			}
		})
	}
}

func Test_gate_split(t *testing.T) {
	g, outs := probe(t, lt.Split)
	for _, v := range []bool{false, true, false} {
		g.SetInput(0, v)
		if err := g.Evaluate(); err != nil {
			t.Fatal(err)
		}
		want := "F"
		if v {
			want = "T"
		}
		if outs[0].StateName() != want || outs[1].StateName() != want {
			t.Errorf("split(%v): got %s, %s", v, outs[0].StateName(), outs[1].StateName())
		}
	}
}

func Test_gate_switch(t *testing.T) {
	td := []struct {
		dir, in  bool
		o0, o1   string
		dirState string
	}{
		{false, false, "F", "F", "L"},
		{false, true, "T", "F", "L"},
		{true, false, "F", "F", "R"},
		{true, true, "F", "T", "R"},
	}
	for _, d := range td {
		g, outs := probe(t, lt.Switch)
		g.SetInput(0, d.in)
		if err := g.Toggle(d.dir); err != nil {
			t.Fatal(err)
		}
		if g.StateName() != d.dirState {
			t.Errorf("switch(%v): state %s, expected %s", d.dir, g.StateName(), d.dirState)
		}
		if outs[0].StateName() != d.o0 || outs[1].StateName() != d.o1 {
			t.Errorf("switch dir=%v in=%v: got %s, %s, expected %s, %s",
				d.dir, d.in, outs[0].StateName(), outs[1].StateName(), d.o0, d.o1)
		}
	}
}

func Test_gate_toggle(t *testing.T) {
	c := lt.New()
	o, err := c.Add("o", lt.Out)
	if err != nil {
		t.Fatal(err)
	}
	in, err := c.Add("in", lt.In, lt.Wire{To: o, Port: 0})
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range []bool{true, false, true} {
		if err = in.Toggle(v); err != nil {
			t.Fatal(err)
		}
		want := "F"
		if v {
			want = "T"
		}
		if in.StateName() != want || o.StateName() != want {
			t.Errorf("toggle(%v): in=%s out=%s", v, in.StateName(), o.StateName())
		}
	}

	// only In and Switch gates are toggleable
	if err = o.Toggle(true); err == nil {
		t.Error("expected error toggling an OUT gate")
	}
}

func Test_gate_quick(t *testing.T) {
	xor, xorOuts := probe(t, lt.Xor)
	nand, nandOuts := probe(t, lt.Nand)
	f := func(a, b bool) bool {
		xor.SetInput(0, a)
		xor.SetInput(1, b)
		nand.SetInput(0, a)
		nand.SetInput(1, b)
		if err := xor.Evaluate(); err != nil {
			return false
		}
		if err := nand.Evaluate(); err != nil {
			return false
		}
		return (xorOuts[0].StateName() == "T") == (a != b) &&
			(nandOuts[0].StateName() == "T") == !(a && b)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func Test_construction_errors(t *testing.T) {
	c := lt.New()
	o, err := c.Add("o", lt.Out)
	if err != nil {
		t.Fatal(err)
	}

	// wrong wire count
	if _, err = c.Add("g", lt.And); errors.Cause(err) != lt.ErrBadArity {
		t.Errorf("expected ErrBadArity, got %v", err)
	}
	// port out of range: Out gates have a single input port
	if _, err = c.Add("g", lt.In, lt.Wire{To: o, Port: 1}); errors.Cause(err) != lt.ErrBadPort {
		t.Errorf("expected ErrBadPort, got %v", err)
	}
	// name reuse
	if _, err = c.Add("o", lt.Out); err == nil {
		t.Error("expected error redefining gate o")
	}
	// wiring across circuits
	if _, err = lt.New().Add("g", lt.In, lt.Wire{To: o, Port: 0}); err == nil {
		t.Error("expected error wiring into another circuit")
	}
}

func Test_step_budget(t *testing.T) {
	c := lt.New(lt.WithMaxSteps(2))
	o, err := c.Add("o", lt.Out)
	if err != nil {
		t.Fatal(err)
	}
	d1, err := c.Add("d1", lt.Diode, lt.Wire{To: o, Port: 0})
	if err != nil {
		t.Fatal(err)
	}
	d2, err := c.Add("d2", lt.Diode, lt.Wire{To: d1, Port: 0})
	if err != nil {
		t.Fatal(err)
	}
	in, err := c.Add("in", lt.In, lt.Wire{To: d2, Port: 0})
	if err != nil {
		t.Fatal(err)
	}
	// the chain in -> d2 -> d1 -> o needs 3 evaluations to settle
	if err = in.Toggle(true); errors.Cause(err) != lt.ErrCycle {
		t.Errorf("expected ErrCycle, got %v", err)
	}
}
