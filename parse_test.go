package logictab_test

import (
	"strings"
	"testing"

	lt "github.com/db47h/logictab"
	"github.com/db47h/logictab/lgclib"
	"github.com/db47h/logictab/tabtest"
	"github.com/pkg/errors"
)

func Test_load_minimal(t *testing.T) {
	c, tt, err := lt.Load(strings.NewReader("A OUT\nB IN A 0\n"))
	if err != nil {
		t.Fatal(err)
	}
	if c.Gate("A") == nil || c.Gate("B") == nil {
		t.Fatal("gates A and B not registered")
	}
	rows, err := tt.Run()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Outputs[0] != "F" || rows[1].Outputs[0] != "T" {
		t.Errorf("expected A=F then A=T, got %v, %v", rows[0].Outputs, rows[1].Outputs)
	}
}

func Test_load_syntax(t *testing.T) {
	const src = `
# comments and blank lines are skipped,
# type keywords are case insensitive.

A   out
B   Xor   A 0
sw  swItch  B B 0 1
one TRUE  sw 0
C   in    sw 0
`
	c, tt, err := lt.Load(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if c.Size() != 5 {
		t.Errorf("expected 5 gates, got %d", c.Size())
	}
	// inputs sw, C + output A, in file order
	want := []string{"sw", "C", "A"}
	h := tt.Header()
	if len(h) != len(want) {
		t.Fatalf("expected header %v, got %v", want, h)
	}
	for i := range want {
		if h[i] != want[i] {
			t.Errorf("header[%d]: expected %q, got %q", i, want[i], h[i])
		}
	}
}

func Test_load_errors(t *testing.T) {
	td := []struct {
		name string
		src  string
		err  error
	}{
		{"undefined reference", "B IN A 0\n", lt.ErrUndefRef},
		{"unknown type", "A OUT\nB FROB A 0\n", lt.ErrUnknownType},
		{"missing arguments", "A OUT\nB AND A\n", lt.ErrBadArity},
		{"missing type", "A\n", lt.ErrBadArity},
		{"extra arguments", "A OUT B\n", lt.ErrBadArity},
		{"bad port syntax", "A OUT\nB IN A x\n", lt.ErrBadPort},
		{"port out of range", "A OUT\nB IN A 2\n", lt.ErrBadPort},
		{"no variable inputs", "A OUT\n", lt.ErrConfig},
		{"redefined gate", "A OUT\nA OUT\n", nil},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			c, tt, err := lt.Load(strings.NewReader(d.src))
			if err == nil {
				t.Fatal("expected an error")
			}
			if d.err != nil && errors.Cause(err) != d.err {
				t.Errorf("expected %v, got %v", d.err, err)
			}
			if c != nil || tt != nil {
				t.Error("expected no circuit and no table on error")
			}
		})
	}
}

// A loaded description must behave exactly like the same circuit built in
// code.
func Test_load_halfadder(t *testing.T) {
	_, loaded, err := lt.LoadFile("testdata/halfadder.lgc")
	if err != nil {
		t.Fatal(err)
	}
	ha, err := lgclib.NewHalfAdder(lt.New(), "")
	if err != nil {
		t.Fatal(err)
	}
	built, err := ha.Table()
	if err != nil {
		t.Fatal(err)
	}
	tabtest.Compare(t, built, loaded)
}

func Test_load_demo(t *testing.T) {
	c, tt, err := lt.LoadFile("examples/demo.lgc")
	if err != nil {
		t.Fatal(err)
	}
	if c.Size() != 14 {
		t.Errorf("expected 14 gates, got %d", c.Size())
	}
	rows, err := tt.Run()
	if err != nil {
		t.Fatal(err)
	}
	// 4 IN gates and 2 switches: 64 assignments
	if len(rows) != 64 {
		t.Errorf("expected 64 rows, got %d", len(rows))
	}
}

func Test_load_file_missing(t *testing.T) {
	if _, _, err := lt.LoadFile("testdata/nonexistent.lgc"); err == nil {
		t.Error("expected error for missing file")
	}
}
