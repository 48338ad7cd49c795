// Package sorting parses sort directives and orders record sequences.
//
// A directive is "column" or "column-order" (whitespace also separates).
// Sorting is stable and always runs ascending first; a descending
// directive reverses the sorted slice afterwards, which preserves the
// relative order of tied records and keeps output reproducible.
package sorting
