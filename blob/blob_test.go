package blob_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/agglo/blob"
	"github.com/katalvlaran/agglo/cluster"
)

// fixtureGroups builds two groups with integral weights so that payload
// sizes are exact under a 1-byte-per-unit scale.
func fixtureGroups(t *testing.T) []cluster.Group {
	t.Helper()

	res, err := cluster.Cluster([]cluster.Item{
		{ID: "f1", Weight: 40},
		{ID: "f2", Weight: 10},
		{ID: "f3", Weight: 50},
	}, 100)
	require.NoError(t, err)
	require.Len(t, res.Groups, 1)

	return res.Groups
}

func newMerger(t *testing.T) (*blob.Merger, string) {
	t.Helper()

	dir := t.TempDir()
	m, err := blob.NewMerger(dir, blob.WithBytesPerUnit(1))
	require.NoError(t, err)

	return m, dir
}

// TestWriteAll_LayoutAndIndex checks the record layout byte by byte:
// header lines, fill payloads and the offsets the index reports.
func TestWriteAll_LayoutAndIndex(t *testing.T) {
	m, _ := newMerger(t)
	groups := fixtureGroups(t)

	idx, err := m.WriteAll(groups)
	require.NoError(t, err)
	assert.Equal(t, 3, idx.Len())

	raw, err := os.ReadFile(m.BlobPath(groups[0].ID))
	require.NoError(t, err)

	// Group item order is f2, f1, f3; headers are 9 bytes each ("FILE: fN\n").
	want := "FILE: f2\n" + strings.Repeat("X", 10) +
		"FILE: f1\n" + strings.Repeat("X", 40) +
		"FILE: f3\n" + strings.Repeat("X", 50)
	assert.Equal(t, want, string(raw))

	loc, err := idx.Locate("f1")
	require.NoError(t, err)
	assert.Equal(t, blob.Location{GroupID: groups[0].ID, Offset: 19, Size: 49}, loc)

	loc, err = idx.Locate("f3")
	require.NoError(t, err)
	assert.Equal(t, int64(68), loc.Offset)
	assert.Equal(t, int64(59), loc.Size)
}

// TestIndex_ExtractRoundTrip: every stored item extracts to its exact
// payload, header excluded.
func TestIndex_ExtractRoundTrip(t *testing.T) {
	m, _ := newMerger(t)
	idx, err := m.WriteAll(fixtureGroups(t))
	require.NoError(t, err)

	for id, size := range map[string]int{"f1": 40, "f2": 10, "f3": 50} {
		payload, err := idx.Extract(id)
		require.NoError(t, err, id)
		assert.Equal(t, strings.Repeat("X", size), string(payload), id)
	}
}

// TestIndex_GroupViews checks GroupItems order and GroupIDs.
func TestIndex_GroupViews(t *testing.T) {
	m, _ := newMerger(t)
	groups := fixtureGroups(t)
	idx, err := m.WriteAll(groups)
	require.NoError(t, err)

	assert.Equal(t, []string{"f2", "f1", "f3"}, idx.GroupItems(groups[0].ID))
	assert.Empty(t, idx.GroupItems(999))
	assert.Equal(t, []int{groups[0].ID}, idx.GroupIDs())
}

// TestIndex_Errors covers the unknown-item and missing-blob paths.
func TestIndex_Errors(t *testing.T) {
	m, _ := newMerger(t)
	groups := fixtureGroups(t)
	idx, err := m.WriteAll(groups)
	require.NoError(t, err)

	_, err = idx.Locate("ghost")
	assert.ErrorIs(t, err, blob.ErrUnknownItem)
	_, err = idx.Extract("ghost")
	assert.ErrorIs(t, err, blob.ErrUnknownItem)

	require.NoError(t, os.Remove(m.BlobPath(groups[0].ID)))
	_, err = idx.Extract("f1")
	assert.ErrorIs(t, err, blob.ErrBlobMissing)
}

// TestIndex_CorruptBlob: a rewritten header must be detected on Extract.
func TestIndex_CorruptBlob(t *testing.T) {
	m, _ := newMerger(t)
	groups := fixtureGroups(t)
	idx, err := m.WriteAll(groups)
	require.NoError(t, err)

	path := m.BlobPath(groups[0].ID)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	raw[6] = 'z' // flip one header byte of the first record ("f2" → "z2")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	_, err = idx.Extract("f2")
	assert.ErrorIs(t, err, blob.ErrCorruptBlob)
}

// TestBuildIndex_MatchesWriteAll: the dry-run index agrees with the one
// produced while actually writing.
func TestBuildIndex_MatchesWriteAll(t *testing.T) {
	m, _ := newMerger(t)
	groups := fixtureGroups(t)

	written, err := m.WriteAll(groups)
	require.NoError(t, err)
	planned := m.BuildIndex(groups)

	assert.Equal(t, written.Len(), planned.Len())
	for _, id := range []string{"f1", "f2", "f3"} {
		wantLoc, err := written.Locate(id)
		require.NoError(t, err)
		gotLoc, err := planned.Locate(id)
		require.NoError(t, err)
		assert.Equal(t, wantLoc, gotLoc, id)
	}
}

// TestWriteGroup_SingleBlob: one group in, one blob and its index out.
func TestWriteGroup_SingleBlob(t *testing.T) {
	m, _ := newMerger(t)
	groups := fixtureGroups(t)

	idx, err := m.WriteGroup(groups[0])
	require.NoError(t, err)
	assert.Equal(t, 3, idx.Len())

	payload, err := idx.Extract("f3")
	require.NoError(t, err)
	assert.Len(t, payload, 50)
}

// TestMerger_PayloadSize: default scale is 1 MiB per weight unit and
// fractional weights round to the nearest byte.
func TestMerger_PayloadSize(t *testing.T) {
	dir := t.TempDir()

	m, err := blob.NewMerger(dir)
	require.NoError(t, err)
	assert.Equal(t, int64(2<<20), m.PayloadSize(2))

	m, err = blob.NewMerger(dir, blob.WithBytesPerUnit(10))
	require.NoError(t, err)
	assert.Equal(t, int64(25), m.PayloadSize(2.5))
	assert.Equal(t, int64(5), m.PayloadSize(0.49))
}

// TestWithBytesPerUnit_Panics: a non-positive scale is programmer error.
func TestWithBytesPerUnit_Panics(t *testing.T) {
	assert.Panics(t, func() { blob.WithBytesPerUnit(0) })
	assert.Panics(t, func() { blob.WithBytesPerUnit(-3) })
}
