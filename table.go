// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logictab

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

// ErrConfig is reported when a truth table is built over an empty variable
// input set or an empty output set.
//
var ErrConfig = errors.New("invalid truth table configuration")

// A Row is one enumerated assignment: the state codes of the variable inputs
// followed by the state codes of the outputs, in declared order.
//
type Row struct {
	Inputs  []string
	Outputs []string
}

// A TruthTable enumerates a circuit over every assignment of its variable
// inputs. It shares the gates with the circuit that owns them and has
// exclusive use of the whole graph while Run or Outputs execute.
//
type TruthTable struct {
	inputs    []*Gate
	constants []*Gate
	outputs   []*Gate
}

// NewTruthTable builds a truth table over the given variable inputs,
// constant inputs and output gates. It fails with an error wrapping
// ErrConfig if inputs or outputs is empty, or if a variable input is not a
// toggleable gate (In or Switch). constants may be empty.
//
func NewTruthTable(inputs, constants, outputs []*Gate) (*TruthTable, error) {
	if len(inputs) == 0 {
		return nil, errors.Wrap(ErrConfig, "no variable inputs")
	}
	if len(outputs) == 0 {
		return nil, errors.Wrap(ErrConfig, "no outputs")
	}
	for _, g := range inputs {
		if g.typ != In && g.typ != Switch {
			return nil, errors.Wrapf(ErrConfig, "variable input %q is a %s gate", g.name, g.typ)
		}
	}
	return &TruthTable{inputs: inputs, constants: constants, outputs: outputs}, nil
}

// Header returns the table column names: variable input names followed by
// output names, in declared order.
//
func (t *TruthTable) Header() []string {
	h := make([]string, 0, len(t.inputs)+len(t.outputs))
	for _, g := range t.inputs {
		h = append(h, g.name)
	}
	for _, g := range t.outputs {
		h = append(h, g.name)
	}
	return h
}

// Outputs toggles every variable input with the corresponding value,
// re-asserts the constant inputs and returns the state codes of the output
// gates. Constants must be re-asserted on every assignment: a switch
// somewhere in the graph may have rerouted their only path since the last
// time they fired, and a constant's signal is otherwise fire-and-forget.
//
func (t *TruthTable) Outputs(values []bool) ([]string, error) {
	if len(values) != len(t.inputs) {
		return nil, errors.Wrapf(ErrConfig, "got %d input values for %d variable inputs",
			len(values), len(t.inputs))
	}
	for i, v := range values {
		if err := t.inputs[i].Toggle(v); err != nil {
			return nil, err
		}
	}
	for _, g := range t.constants {
		if err := g.Evaluate(); err != nil {
			return nil, err
		}
	}
	out := make([]string, len(t.outputs))
	for i, g := range t.outputs {
		out[i] = g.StateName()
	}
	return out, nil
}

// Run enumerates all 2^N assignments of the N variable inputs and returns
// one row per assignment. Row i assigns the inputs the N-bit binary
// expansion of i, most significant bit first: with N=3, row 5 assigns
// [true, false, true].
//
func (t *TruthTable) Run() ([]Row, error) {
	n := len(t.inputs)
	values := make([]bool, n)
	rows := make([]Row, 0, 1<<uint(n))
	for i := 0; i < 1<<uint(n); i++ {
		for bit := 0; bit < n; bit++ {
			values[bit] = i&(1<<uint(n-bit-1)) != 0
		}
		out, err := t.Outputs(values)
		if err != nil {
			return nil, err
		}
		in := make([]string, n)
		for j, g := range t.inputs {
			in[j] = g.StateName()
		}
		rows = append(rows, Row{Inputs: in, Outputs: out})
	}
	return rows, nil
}

// Write runs the table and writes it to w as tab-separated text: a header
// line of input and output names followed by one line per assignment.
//
func (t *TruthTable) Write(w io.Writer) error {
	rows, err := t.Run()
	if err != nil {
		return err
	}
	if _, err = io.WriteString(w, strings.Join(t.Header(), "\t")+"\n"); err != nil {
		return err
	}
	for _, r := range rows {
		line := strings.Join(r.Inputs, "\t") + "\t" + strings.Join(r.Outputs, "\t") + "\n"
		if _, err = io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}
