// Package diag defines diagnostics, the Reporter contract used by the
// lexer/parser/sema phases, and the Engine that fans reported diagnostics
// out to attachable consumers. Interactive mode detaches all consumers for
// the duration of a speculative completion pass and reattaches them after.
package diag
