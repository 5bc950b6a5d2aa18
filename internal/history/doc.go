// Package history persists per-run conversion summaries to a SQLite
// database so operators can review past runs and their failures after
// the terminal output is gone.
package history
