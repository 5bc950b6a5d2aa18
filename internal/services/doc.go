// Package services defines shared utilities consumed by the external
// tool integrations under internal/services and by the pipeline.
//
// Key responsibilities:
//   - Structured error markers plus the Wrap helper that keep failure
//     messages uniform across the CUE reader, splitter, and encoder.
//   - A thin command execution abstraction that makes external tool
//     invocations testable without spawning processes.
package services
