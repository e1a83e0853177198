// =============================================================================
// Calculate Sales - Record File Selector
// =============================================================================
//
// This module picks the record files out of a directory listing and checks
// that they form a gapless run:
//
//   00000001.rcd, 00000002.rcd, 00000003.rcd   -> ok
//   00000001.rcd, 00000002.rcd, 00000004.rcd   -> NonSequentialFileNames
//
// Entries that are not regular files or whose name is not exactly eight
// digits followed by ".rcd" are ignored without error.
//
// =============================================================================

package selector

import (
	"io/fs"
	"regexp"
	"sort"
	"strconv"

	"github.com/ginjaninja78/calculate-sales/internal/types"
)

// RecordExtension is the extension of record files, without the dot.
const RecordExtension = "rcd"

// prefixLength is the width of the numeric part of a record file name.
const prefixLength = 8

var recordNamePattern = regexp.MustCompile(`^[0-9]{8}\.` + RecordExtension + `$`)

// RecordFile is one selected record file.
type RecordFile struct {
	// Name is the base file name, e.g. "00000001.rcd".
	Name string

	// Sequence is the numeric value of the eight-digit prefix.
	Sequence int
}

// IsRecordName reports whether name has the record file format.
func IsRecordName(name string) bool {
	return recordNamePattern.MatchString(name)
}

// Select filters entries to record files, sorts them by sequence number and
// verifies the sequence has no gaps.
//
// RETURNS:
//   - The record files in ascending order (empty when none match).
//   - A *types.Error of kind NonSequentialFileNames at the first gap.
func Select(entries []fs.DirEntry) ([]RecordFile, error) {
	var files []RecordFile

	for _, entry := range entries {
		if !entry.Type().IsRegular() || !IsRecordName(entry.Name()) {
			continue
		}

		// The pattern guarantees eight ASCII digits.
		seq, err := strconv.Atoi(entry.Name()[:prefixLength])
		if err != nil {
			return nil, types.WrapError(types.KindUnknown, entry.Name(), err)
		}

		files = append(files, RecordFile{Name: entry.Name(), Sequence: seq})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Sequence < files[j].Sequence
	})

	if err := CheckSequence(files); err != nil {
		return nil, err
	}

	return files, nil
}

// CheckSequence verifies each file's sequence is its predecessor's plus one.
// Zero or one file is always sequential.
func CheckSequence(files []RecordFile) error {
	for i := 0; i < len(files)-1; i++ {
		former, latter := files[i], files[i+1]
		if latter.Sequence-former.Sequence != 1 {
			return types.NewError(types.KindNonSequentialFileNames, latter.Name)
		}
	}
	return nil
}
