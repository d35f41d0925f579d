// Package commands defines the solid CLI: one subcommand per principle,
// each a small runnable demonstration.
//
// Commands
//
//   - invoice   Build, total, render and persist an invoice (srp)
//   - shapes    Sum shape areas, optionally from a YAML catalog (ocp)
//   - birds     Migrate a flock; contrast with the legacy contract (lsp)
//   - devices   Drive compact and multi-function devices (isp)
//   - fetch     Wire a consumer to a provider and process data (dip)
//
// # Implementation
//
// The root command configures a zap logger before any subcommand runs
// (development style under --verbose, silent otherwise); handlers inject it
// into the library packages rather than letting them log on their own.
package commands
