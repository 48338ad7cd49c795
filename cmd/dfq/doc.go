// Command dfq reports mounted filesystems with their usage statistics.
//
// Every reportable attribute is a named column usable in a sort
// directive and in a typed filter expression:
//
//	dfq --sort size-asc
//	dfq --filter 'size>10G and use<90%'
//	dfq --filter 'not (type=tmpfs)' --json
//	dfq --lustre --sort lustre_component
//	dfq /var/log
//
// Output is a plain table by default; --csv, --json and --yaml select
// machine-readable formats. Configuration comes from
// ~/.config/dfq/config.toml and DFQ_* environment variables, with
// flags taking precedence.
package main
