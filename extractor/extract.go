// SPDX-License-Identifier: MIT
package extractor

import "github.com/katalvlaran/zxgo/qcir"

// ExtractionLoop runs at most n rows of the main loop (CleanFrontier,
// RemoveGadget, ExtractCXs, ExtractHadamards, in that order), stopping
// early once every qubit's frontier has reached its graph input.
// Returns whether extraction is now fully done, so a caller stepping
// through one row at a time (the CLI's `extract step`) can tell when
// to stop.
func (e *Extractor) ExtractionLoop(n int) (bool, error) {
	for i := 0; i < n && !e.Done(); i++ {
		if e.opts.cancelled() {
			return e.Done(), nil
		}
		if _, err := e.CleanFrontier(); err != nil {
			return false, err
		}
		if _, err := e.RemoveGadget(); err != nil {
			return false, err
		}
		if _, err := e.ExtractCXs(); err != nil {
			return false, err
		}
		if _, err := e.ExtractHadamards(); err != nil {
			return false, err
		}
		e.opts.logf("extractor: row %d done, %d qubit(s) still active", i+1, len(e.activeQubits()))
	}
	return e.Done(), nil
}

// PermuteQubits reports the permutation extraction actually landed
// on — perm[q] is the true graph-input qubit the wire now labeled q
// traces back to — once every qubit is done. When the extractor was
// built with WithPermuteQubits(true) (the default) it also folds a
// SWAP network realizing that permutation into the circuit, placed at
// the very start (nearest the true inputs); otherwise the permutation
// is left for the caller to interpret and the circuit's qubit q is
// only guaranteed to carry the *data* of perm[q], not the label.
func (e *Extractor) PermuteQubits() ([]int, error) {
	if !e.Done() {
		return nil, ErrStuck
	}
	perm := append([]int(nil), e.landedAt...)
	if !e.opts.permuteQubits {
		return perm, nil
	}
	if swaps := swapsToIdentity(perm); len(swaps) > 0 {
		e.rounds = append(e.rounds, swaps)
	}
	return perm, nil
}

// swapsToIdentity returns a sequence of SWAP gates that, applied in
// order, sorts perm into the identity permutation: a standard
// cycle-following selection sort, at most len(perm)-1 swaps.
func swapsToIdentity(perm []int) []qcir.Gate {
	p := append([]int(nil), perm...)
	var gates []qcir.Gate
	for i := range p {
		for p[i] != i {
			j := p[i]
			gates = append(gates, qcir.Gate{Kind: qcir.SWAP, Qubits: []int{i, j}})
			p[i], p[j] = p[j], p[i]
		}
	}
	return gates
}

// maxRows backstops ExtractionLoop inside Extract against a
// malformed gflow witness that never converges; a real diagram peels
// to its inputs in at most |V| rows.
const maxRows = 1 << 20

// Extract runs extraction to completion and returns the resulting
// QCir. Rows were discovered output-to-input, so the finished circuit
// is each row's gates — kept in their own clean/gadget/CX/Hadamard
// order — concatenated in reverse row order, with any permutation
// SWAPs (added last, so they land first) at the very front.
func (e *Extractor) Extract() (*qcir.QCir, error) {
	done, err := e.ExtractionLoop(maxRows)
	if err != nil {
		return nil, err
	}
	if !done {
		return nil, ErrStuck
	}
	if _, err := e.PermuteQubits(); err != nil {
		return nil, err
	}

	out := qcir.New(len(e.frontier))
	for i := len(e.rounds) - 1; i >= 0; i-- {
		for _, gt := range e.rounds[i] {
			if err := addGate(out, gt); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

func addGate(c *qcir.QCir, g qcir.Gate) error {
	if g.Kind == qcir.RZ || g.Kind == qcir.RX {
		return c.AddPhaseGate(g.Kind, g.Qubits, g.Phase)
	}
	return c.AddGate(g.Kind, g.Qubits)
}
