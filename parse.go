// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logictab

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Loader errors. All of them abandon the whole load: no partial circuit is
// ever returned.
//
var (
	// ErrUnknownType is reported for an unrecognized gate type keyword.
	ErrUnknownType = errors.New("unknown gate type")

	// ErrBadArity is reported for a wrong argument count on a recognized
	// gate type.
	ErrBadArity = errors.New("wrong argument count")

	// ErrUndefRef is reported when a line references a downstream gate that
	// has not been defined yet.
	ErrUndefRef = errors.New("undefined downstream gate")
)

// Load parses a circuit description and returns the resulting circuit along
// with a ready-to-run truth table.
//
// The description is line oriented. Blank lines and lines starting with '#'
// are ignored; every other line is whitespace-separated tokens:
//
//	<name> OUT
//	<name> IN|TRUE|FALSE <out_name> <out_port>
//	<name> AND|OR|XOR|NAND|NOR|XNOR|NOT|DIODE <out_name> <out_port>
//	<name> SPLIT|SWITCH <out_name1> <out_name2> <out_port1> <out_port2>
//
// Type keywords are case insensitive, gate names case sensitive. Every
// downstream name must already be defined, so gates must be listed in
// reverse topological order, sinks first.
//
// IN and SWITCH gates become the table's variable inputs, TRUE and FALSE its
// constant inputs and OUT gates its outputs, all in file order. On any error
// Load returns no circuit and no table, only a diagnostic naming the rule
// that failed.
//
func Load(r io.Reader, opts ...Option) (*Circuit, *TruthTable, error) {
	var inputs, constants, outputs []*Gate

	c := New(opts...)
	sc := bufio.NewScanner(r)
	for ln := 1; sc.Scan(); ln++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		toks := strings.Fields(line)
		if len(toks) < 2 {
			return nil, nil, errors.Wrapf(ErrBadArity, "line %d: gate %q: missing type", ln, toks[0])
		}
		name := toks[0]
		t, err := ParseType(toks[1])
		if err != nil {
			return nil, nil, errors.WithMessagef(err, "line %d: gate %q", ln, name)
		}
		wires, err := parseWires(c, t, toks[2:])
		if err != nil {
			return nil, nil, errors.WithMessagef(err, "line %d: gate %q", ln, name)
		}
		g, err := c.Add(name, t, wires...)
		if err != nil {
			return nil, nil, errors.WithMessagef(err, "line %d", ln)
		}
		switch t {
		case In, Switch:
			inputs = append(inputs, g)
		case True, False:
			constants = append(constants, g)
		case Out:
			outputs = append(outputs, g)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, errors.Wrap(err, "reading description")
	}

	tt, err := NewTruthTable(inputs, constants, outputs)
	if err != nil {
		return nil, nil, err
	}
	return c, tt, nil
}

// LoadFile loads a circuit description from the file at path. See Load.
//
func LoadFile(path string, opts ...Option) (*Circuit, *TruthTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "opening description")
	}
	defer f.Close()
	return Load(f, opts...)
}

// parseWires resolves the wiring arguments for a gate of type t: nothing for
// Out, "<name> <port>" for single-output gates, "<name1> <name2> <port1>
// <port2>" for Split and Switch.
func parseWires(c *Circuit, t Type, args []string) ([]Wire, error) {
	n := t.fanout()
	if len(args) != 2*n {
		return nil, errors.Wrapf(ErrBadArity, "%s takes %d arguments, got %d", t, 2*n, len(args))
	}
	wires := make([]Wire, n)
	for i := 0; i < n; i++ {
		dst := c.Gate(args[i])
		if dst == nil {
			return nil, errors.Wrapf(ErrUndefRef,
				"%q: gates must be defined in reverse topological order, downstream gates first", args[i])
		}
		port, err := strconv.Atoi(args[n+i])
		if err != nil {
			return nil, errors.Wrapf(ErrBadPort, "%q", args[n+i])
		}
		wires[i] = Wire{To: dst, Port: port}
	}
	return wires, nil
}
