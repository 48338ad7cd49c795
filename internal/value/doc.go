// Package value provides the typed value union shared by the column,
// sorting and filter engines.
//
// Every reportable attribute resolves to a Value: a byte size, a
// percentage, a plain number, a string, a boolean, or Missing when the
// attribute is undefined for a mount (unreachable remote volumes have no
// capacity statistics, for example).
//
// The package also owns literal parsing for the filter language (byte
// sizes with binary and SI suffixes, percentages, booleans) and byte-size
// formatting for the renderer.
package value
