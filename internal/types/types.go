// =============================================================================
// Calculate Sales - Shared Types
// =============================================================================
//
// This package contains types shared by the loader, selector, validator and
// writer packages so that none of them has to import another:
//   - Category describes one code dictionary (branch or commodity)
//   - Kind / Error describe every failure the pipeline can report
//
// =============================================================================

package types

import "regexp"

// =============================================================================
// CATEGORY
// =============================================================================

// Category describes one kind of definition file and the summary it produces.
type Category struct {
	// Name is the short identifier used in logs and workbook sheet names.
	Name string

	// Label is the human-readable name of the definition file.
	// It is the subject of MissingDefinitionFile / InvalidDefinitionFormat.
	Label string

	// CodePattern is the format every code in the definition file must match.
	CodePattern *regexp.Regexp
}

// Branch is the branch category: three-digit codes.
var Branch = Category{
	Name:        "branch",
	Label:       "branch definition file",
	CodePattern: regexp.MustCompile(`^[0-9]{3}$`),
}

// Commodity is the commodity (product) category: eight alphanumeric characters.
var Commodity = Category{
	Name:        "commodity",
	Label:       "commodity definition file",
	CodePattern: regexp.MustCompile(`^[a-zA-Z0-9]{8}$`),
}
