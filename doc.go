// Package zxgo is a ZX-calculus based quantum circuit compiler and
// optimizer: it ingests a quantum circuit, converts it to a ZX-graph,
// simplifies that graph by fixed-point application of rewrite rules,
// and extracts an optimized circuit back out.
//
// The pipeline, leaf packages first:
//
//	phase/         — exact rational phase arithmetic, vertex/edge kinds
//	zxgraph/       — the ZX-graph data model and its graph manager
//	rules/         — the rewrite-rule catalog (spider fusion, pivoting, ...)
//	internal/gf2/  — GF(2) linear algebra shared by gflow and extractor
//	gflow/         — generalized flow, the extractability witness
//	tensor/        — dense complex tensor contraction
//	zx2ts/         — ZX-graph to tensor evaluation, for verifying rewrites
//	simplify/      — named strategies driving the rule catalog to a fixed point
//	qcir/          — the gate-list circuit representation and its ZX translation
//	extractor/     — ZX-graph back to circuit, via frontier-peeling
//	zxio/          — the .zx textual graph format
//	cmd/zxgo/      — a thin demonstration shell over the above
//
// A circuit round-trips as: qcir.QCir -> (ToZX) -> zxgraph.ZXGraph ->
// (simplify.Simplifier) -> a smaller zxgraph.ZXGraph -> (extractor.Extract)
// -> an equivalent, usually cheaper, qcir.QCir.
//
//	go get github.com/katalvlaran/zxgo
package zxgo
