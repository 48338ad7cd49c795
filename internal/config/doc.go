// Package config loads tool configuration with layered precedence.
//
// Settings come from built-in defaults, then an optional TOML file at
// $XDG_CONFIG_HOME/dfq/config.toml (~/.config/dfq/config.toml), then
// DFQ_* environment variables. Command-line flags are applied last by
// the caller.
//
// Configuration Sections:
//   - Output: units, format, column selection, CSV separator
//   - Overlay: Lustre collection toggles
//   - Logging: log level and development mode
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Println(cfg.Output.Format)
//
// Environment Variables:
//   - DFQ_UNITS, DFQ_FORMAT, DFQ_COLS, DFQ_CSV_SEPARATOR, DFQ_ALL
//   - DFQ_LUSTRE, DFQ_LUSTRE_ONLY
//   - DFQ_LOG_LEVEL, DFQ_LOG_DEV
package config
