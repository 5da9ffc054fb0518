// SPDX-License-Identifier: MIT
package rules

// All returns one instance of every rule in the catalog, in the
// order the simplifier's default strategies apply them: structural
// simplifications first (fusion, identity, Hadamard-box cleanup),
// then the graph-theoretic rewrites that need a graph-like diagram.
func All() []Rule {
	return []Rule{
		SpiderFusionRule{},
		IdentityRemovalRule{},
		HRuleRule{},
		HadamardFusionRule{},
		StateCopyRule{},
		BialgebraRule{},
		PhaseGadgetFusionRule{},
		LocalComplementationRule{},
		PivotRule{},
		PivotGadgetRule{},
		PivotBoundaryRule{},
	}
}
