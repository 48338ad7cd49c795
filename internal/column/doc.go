// Package column is the registry of reportable mount attributes.
//
// Columns form a closed enumeration. Each carries display metadata
// (title, alignment), a value kind driving which filter operators and
// literals apply, a default sort order, and accessors extracting and
// comparing per-record values. The Lustre columns are only resolvable
// when the overlay was requested; comparing through them consults the
// overlay table instead of the base record.
package column
