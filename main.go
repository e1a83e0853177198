// =============================================================================
// Calculate Sales - Main Entry Point
// =============================================================================
//
// calculate-sales validates daily sales record files against the branch and
// commodity definitions and writes per-branch and per-commodity totals.
//
// USAGE:
//   calculate-sales process <dir>   - Aggregate the record files in <dir>
//   calculate-sales version         - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Loader, selector, validator, writer and pipeline
//   - pkg/           : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/calculate-sales/cmd"
)

func main() {
	cmd.Execute()
}
