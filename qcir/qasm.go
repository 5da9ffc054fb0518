// SPDX-License-Identifier: MIT
package qcir

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/zxgo/phase"
)

// WriteQASM renders the circuit as a minimal OpenQASM-2-flavoured text
// subset: one "OPENQASM 2.0;" header, one qreg declaration, then one
// line per gate ("h q[0];", "cx q[0],q[1];", "rz(1/4) q[2];" with the
// phase given as a pi-multiple fraction). This is not a general
// OpenQASM writer — no classical registers, no user-defined gates, no
// control-flow — only the subset this package's own Kind set needs
// for its own round-trip tests.
func (c *QCir) WriteQASM() string {
	var b strings.Builder
	fmt.Fprintf(&b, "OPENQASM 2.0;\n")
	fmt.Fprintf(&b, "qreg q[%d];\n", c.qubits)
	for _, g := range c.gates {
		b.WriteString(gateQASMLine(g))
		b.WriteString("\n")
	}
	return b.String()
}

func gateQASMLine(g Gate) string {
	if g.Kind.isPhaseGate() {
		return fmt.Sprintf("%s(%s) q[%d];", g.Kind, fractionOf(g.Phase), g.Qubits[0])
	}
	qs := make([]string, len(g.Qubits))
	for i, q := range g.Qubits {
		qs[i] = fmt.Sprintf("q[%d]", q)
	}
	return fmt.Sprintf("%s %s;", g.Kind, strings.Join(qs, ","))
}

func fractionOf(ph phase.Phase) string {
	return fmt.Sprintf("%d/%d", ph.Numerator(), ph.Denominator())
}

// ReadQASM parses text produced by WriteQASM back into a QCir.
func ReadQASM(text string) (*QCir, error) {
	scanner := bufio.NewScanner(strings.NewReader(text))
	var c *QCir
	for scanner.Scan() {
		line := strings.TrimSpace(strings.TrimSuffix(scanner.Text(), ";"))
		switch {
		case line == "" || strings.HasPrefix(line, "OPENQASM"):
			continue
		case strings.HasPrefix(line, "qreg"):
			n, err := parseQregSize(line)
			if err != nil {
				return nil, err
			}
			c = New(n)
		default:
			if c == nil {
				return nil, ErrUnsupportedGate
			}
			if err := parseGateLine(c, line); err != nil {
				return nil, err
			}
		}
	}
	if c == nil {
		return nil, ErrUnsupportedGate
	}
	return c, nil
}

func parseQregSize(line string) (int, error) {
	open, end := strings.Index(line, "["), strings.Index(line, "]")
	if open < 0 || end < 0 || end < open {
		return 0, ErrUnsupportedGate
	}
	return strconv.Atoi(line[open+1 : end])
}

func parseGateLine(c *QCir, line string) error {
	name := line
	rest := ""
	if sp := strings.IndexAny(line, " ("); sp >= 0 {
		name = line[:sp]
		rest = line[sp:]
	}

	kind, ok := kindByName(name)
	if !ok {
		return ErrUnsupportedGate
	}

	if kind.isPhaseGate() {
		pStart, pEnd := strings.Index(rest, "("), strings.Index(rest, ")")
		if pStart < 0 || pEnd < 0 {
			return ErrUnsupportedGate
		}
		ph, err := parseFraction(rest[pStart+1 : pEnd])
		if err != nil {
			return err
		}
		qubits, err := parseQubits(rest[pEnd+1:])
		if err != nil {
			return err
		}
		return c.AddPhaseGate(kind, qubits, ph)
	}

	qubits, err := parseQubits(rest)
	if err != nil {
		return err
	}
	return c.AddGate(kind, qubits)
}

func kindByName(name string) (Kind, bool) {
	for _, k := range []Kind{H, X, Z, S, Sdg, T, Tdg, RZ, RX, CX, CZ, SWAP} {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

func parseFraction(s string) (phase.Phase, error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return phase.Zero, ErrUnsupportedGate
	}
	num, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return phase.Zero, err
	}
	den, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return phase.Zero, err
	}
	return phase.New(num, den)
}

func parseQubits(s string) ([]int, error) {
	var out []int
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		open, end := strings.Index(tok, "["), strings.Index(tok, "]")
		if open < 0 || end < 0 || end < open {
			continue
		}
		q, err := strconv.Atoi(tok[open+1 : end])
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, nil
}
