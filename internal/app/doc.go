// Package app wires the single-shot reporting pipeline: read the mount
// table, optionally collect the Lustre overlay, sort, filter, render.
//
// Construction-time errors (bad sort or filter directives, unknown
// columns) abort before any record is processed; an overlay collection
// failure only logs a warning and downgrades the overlay to unavailable.
package app
