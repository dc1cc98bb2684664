// Package incognito finds every minimal generalization of a table's
// quasi-identifier columns that achieves k-anonymity, using the
// bottom-up Incognito lattice search.
//
// Under the hood the work is split across:
//
//	table/      — the dynamically-typed row/column representation
//	vgh/        — value-generalization hierarchies and the per-column Store
//	lattice/    — the product-lattice of generalization vectors
//	anonymity/  — the k-anonymity evaluator
//	search/     — the bottom-up driver that ties the above together
//	dataset/    — CSV dataset loading and missing-value handling
//	hierarchy/  — VGH file parsing (CSV-matrix and tab-indented forms)
//	report/     — result printing and post-hoc verification
//	cmd/incognito/ — the CLI entry point
package incognito
