/*
Package logictab models networks of digital logic gates and enumerates their
truth tables.

A circuit is built gate by gate, consumers before producers: every gate names
the already existing downstream gates it feeds, together with the input port
it feeds on each of them. Signals propagate by pushing: setting an input or
toggling a source evaluates the gate and recursively evaluates everything it
reaches, depth first, until the subgraph settles.

A TruthTable drives a set of variable input gates through every one of the
2^N possible assignments and records the observed state of a set of output
gates. Circuits can be built in code or loaded from a line-oriented text
description, see Load.

Gates are purely combinational and nothing stops a description from closing a
feedback loop. Propagation therefore carries a step budget (see WithMaxSteps)
and reports a cycle instead of exhausting the stack.
*/
package logictab
