// Package render turns the sorted, filtered record sequence into table,
// CSV, JSON or YAML output.
//
// The renderer only sees resolved column metadata and per-record values;
// column semantics stay in the column package. Table output is plain
// text, padded with display-width awareness; structured outputs carry
// raw values (byte counts as integers, shares as floats) so consumers
// don't re-parse human formatting.
package render
