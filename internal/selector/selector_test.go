package selector_test

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/calculate-sales/internal/selector"
	"github.com/ginjaninja78/calculate-sales/internal/types"
)

// listing builds directory entries from file names. Names ending in "/" are
// directories.
func listing(t *testing.T, names ...string) []fs.DirEntry {
	t.Helper()
	fsys := fstest.MapFS{}
	for _, name := range names {
		if name[len(name)-1] == '/' {
			fsys[name[:len(name)-1]] = &fstest.MapFile{Mode: fs.ModeDir}
			continue
		}
		fsys[name] = &fstest.MapFile{Data: []byte("x")}
	}
	entries, err := fs.ReadDir(fsys, ".")
	require.NoError(t, err)
	return entries
}

func names(files []selector.RecordFile) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Name
	}
	return out
}

func TestSelect_FiltersAndSorts(t *testing.T) {
	entries := listing(t,
		"00000003.rcd",
		"00000001.rcd",
		"00000002.rcd",
		"branch.lst",
		"commodity.lst",
		"0000004.rcd",      // seven digits
		"000000005.rcd",    // nine digits
		"00000004.txt",     // wrong extension
		"00000004xrcd",     // no dot
		"00000004.rcd.bak", // suffix
		"a0000004.rcd",     // not a digit
	)

	files, err := selector.Select(entries)
	require.NoError(t, err)

	assert.Equal(t, []string{"00000001.rcd", "00000002.rcd", "00000003.rcd"}, names(files))
	assert.Equal(t, []int{1, 2, 3}, []int{files[0].Sequence, files[1].Sequence, files[2].Sequence})
}

func TestSelect_IgnoresDirectories(t *testing.T) {
	entries := listing(t, "00000001.rcd", "00000002.rcd/", "00000003.rcd")

	_, err := selector.Select(entries)

	// 00000002.rcd is a directory, so 1 -> 3 has a gap.
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.KindNonSequentialFileNames))
}

func TestSelect_Gap(t *testing.T) {
	entries := listing(t, "00000001.rcd", "00000002.rcd", "00000003.rcd", "00000005.rcd")

	files, err := selector.Select(entries)

	require.Error(t, err)
	assert.Nil(t, files)
	assert.True(t, types.IsKind(err, types.KindNonSequentialFileNames))
	assert.Equal(t, "sales file names are not sequential", err.Error())
}

func TestSelect_TriviallySequential(t *testing.T) {
	files, err := selector.Select(listing(t, "branch.lst"))
	require.NoError(t, err)
	assert.Empty(t, files)

	files, err = selector.Select(listing(t, "00000042.rcd"))
	require.NoError(t, err)
	assert.Equal(t, []string{"00000042.rcd"}, names(files))
}

func TestSelect_SequenceNeedNotStartAtOne(t *testing.T) {
	files, err := selector.Select(listing(t, "00000011.rcd", "00000010.rcd", "00000009.rcd"))
	require.NoError(t, err)
	assert.Equal(t, []string{"00000009.rcd", "00000010.rcd", "00000011.rcd"}, names(files))
}

func TestCheckSequence(t *testing.T) {
	assert.NoError(t, selector.CheckSequence(nil))
	assert.NoError(t, selector.CheckSequence([]selector.RecordFile{{Name: "a", Sequence: 7}, {Name: "b", Sequence: 8}}))

	err := selector.CheckSequence([]selector.RecordFile{{Name: "a", Sequence: 7}, {Name: "b", Sequence: 7}})
	assert.True(t, types.IsKind(err, types.KindNonSequentialFileNames))
}

func TestIsRecordName(t *testing.T) {
	assert.True(t, selector.IsRecordName("12345678.rcd"))
	assert.False(t, selector.IsRecordName("12345678.RCD"))
	assert.False(t, selector.IsRecordName("12345678_rcd"))
}
