// Package services defines shared utilities consumed by the reconciliation
// pipeline and external tool integrations.
//
// Key responsibilities:
//   - Context helpers that stamp channel IDs and pass correlation identifiers
//     for logging and tracing.
//   - Structured error markers plus the Wrap helper so failures carry a
//     consistent classification (configuration vs external tool vs contract
//     violation) wherever they surface.
//
// Use these helpers when wiring new pipeline logic so operational behaviour
// (error handling, observability) stays uniform across the pass.
package services
