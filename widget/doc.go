// Package widget holds the retained widget tree painted by the compositor.
//
// Nodes live in an arena (Tree) and are addressed by ID. Every handle to a
// node is an ID, so all holders observe the same state. Mutation happens
// inside Tree.Edit, which grants exclusive access to one node at a time and
// panics on re-entry instead of letting two writers interleave.
//
// A node owns a row-major cell buffer. Transparent cells let lower layers show
// through; writes outside the buffer are dropped. Text is measured by grapheme
// cluster and display width, never by bytes.
package widget
