// =============================================================================
// Calculate Sales - Definition Loader
// =============================================================================
//
// This module loads a two-column definition file (branch.lst, commodity.lst):
//
//   001,Sapporo
//   002,Sendai
//
// Each line must hold exactly two comma-separated fields. The first field must
// match the category's code pattern and the second must not be empty. The
// first bad line aborts the whole load; no partial dictionary is returned.
//
// On success every code gets a zero total, so Totals always covers the
// Dictionary.
//
// =============================================================================

package definition

import (
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/calculate-sales/internal/types"
	"github.com/ginjaninja78/calculate-sales/pkg/utils"
)

// fieldSeparator separates the code from the name.
const fieldSeparator = ","

// Loader reads definition files through a FileManager.
type Loader struct {
	files *utils.FileManager
}

// NewLoader creates a Loader.
func NewLoader(files *utils.FileManager) *Loader {
	return &Loader{files: files}
}

// Load reads dir/fileName as a definition file of the given category.
//
// PARAMETERS:
//   - dir: The directory holding the definition file.
//   - fileName: The definition file name (e.g. "branch.lst").
//   - category: Supplies the code pattern and the label used in errors.
//
// RETURNS:
//   - The dictionary, in file order.
//   - A zero total for every defined code.
//   - A *types.Error: MissingDefinitionFile, InvalidDefinitionFormat, or
//     UnknownError for I/O failures.
func (l *Loader) Load(dir, fileName string, category types.Category) (*Dictionary, Totals, error) {
	path := filepath.Join(dir, fileName)

	if !utils.FileExists(path) {
		return nil, nil, types.NewError(types.KindMissingDefinitionFile, category.Label)
	}

	lines, err := l.files.ReadLines(path)
	if err != nil {
		return nil, nil, types.WrapError(types.KindUnknown, path, err)
	}

	return Parse(lines, category)
}

// Parse builds a dictionary from already-read definition lines.
func Parse(lines []string, category types.Category) (*Dictionary, Totals, error) {
	dict := NewDictionary()
	totals := make(Totals)

	for _, line := range lines {
		code, name, ok := parseLine(line, category)
		if !ok {
			return nil, nil, types.NewError(types.KindInvalidDefinitionFormat, category.Label)
		}

		dict.Put(code, name)
		totals[code] = 0
	}

	return dict, totals, nil
}

// parseLine splits one definition line and validates it.
func parseLine(line string, category types.Category) (code, name string, ok bool) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) != 2 {
		return "", "", false
	}

	code, name = fields[0], fields[1]
	if !category.CodePattern.MatchString(code) || name == "" {
		return "", "", false
	}

	return code, name, true
}
