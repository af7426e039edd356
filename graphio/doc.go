// Package graphio moves digraphs between memory and the two text formats.
//
// What
//
//   - Big format: a "<vertexCount> <edgeCount>" header (only the vertex
//     count is honored), implicit vertices 0..n-1, then one edge per line
//     as "<src> <dst>" or "<src> <dst> <cost>".
//   - Normal format: headerless; "<src> <dst>" / "<src> <dst> <cost>"
//     edge lines and "<v> -1" markers for isolated vertices; vertices are
//     created on first mention. This is also what Graph.String prints.
//   - Read/ReadWeighted parse from an io.Reader; Load/LoadWeighted wrap
//     them with file handling. Write renders the normal format to an
//     io.Writer; Save writes a file through a temp-and-rename step.
//
// Reading an unweighted graph from a costed big file discards the cost
// column and keeps the first occurrence of a repeated edge; every other
// reader is strict.
//
// Determinism
//
// Writers emit edges sorted by (from, to) with isolated vertices after
// them in ascending order, so equal graphs serialize to equal bytes.
// Reading what Write produced reconstructs an equal graph.
//
// Errors
//
// Format violations (bad tokens, wrong field counts, bad header) fail
// ErrMalformedInput tagged with the line number. Content that parses but
// breaks a graph invariant keeps its core sentinel: an edge line naming a
// vertex outside a big header's range surfaces core.ErrVertexNotFound, a
// strict duplicate surfaces core.ErrEdgeExists, a repeated isolation
// marker core.ErrVertexExists.
package graphio
