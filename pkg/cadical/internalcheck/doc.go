// Package internalcheck holds policy tests for the repository layout.
//
// The binding keeps every cgo crossing inside internal/bindings so the rest
// of the module stays portable and auditable. The tests here enforce that
// policy mechanically. The package is not intended for external use and its
// API may change without notice.
package internalcheck
