// Package parser is the external AST collaborator: it drives a tree-sitter
// Java grammar over source text and exposes the node shape the PE builder
// (internal/pe) consumes — kind discriminants matching the PE categories,
// line-number lookup, best-effort qualifier type resolution for method
// invocations, and per-branch end positions for If/Try. Reading source from
// disk, choosing which graphs to emit, and rendering graphs are the
// responsibility of callers in app/, not of this package.
package parser
