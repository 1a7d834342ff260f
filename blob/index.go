package blob

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
)

// Location pins one item inside a blob: which group's blob it lives in,
// where its record starts and how many bytes the record spans. Size counts
// the header line as well as the payload.
type Location struct {
	GroupID int
	Offset  int64
	Size    int64
}

// Index resolves item IDs to their on-disk locations. It is built by
// Merger.WriteAll and is read-only afterwards.
type Index struct {
	dir       string
	locations map[string]Location
	byGroup   map[int][]string
}

func newIndex(dir string) *Index {
	return &Index{
		dir:       dir,
		locations: make(map[string]Location),
		byGroup:   make(map[int][]string),
	}
}

func (x *Index) add(itemID string, loc Location) {
	x.locations[itemID] = loc
	x.byGroup[loc.GroupID] = append(x.byGroup[loc.GroupID], itemID)
}

// Len reports the number of indexed items.
func (x *Index) Len() int { return len(x.locations) }

// Locate returns the location of an item, or ErrUnknownItem.
func (x *Index) Locate(itemID string) (Location, error) {
	loc, ok := x.locations[itemID]
	if !ok {
		return Location{}, fmt.Errorf("%q: %w", itemID, ErrUnknownItem)
	}

	return loc, nil
}

// GroupItems lists the item IDs stored in a group's blob, in stored order.
// Unknown groups yield an empty slice.
func (x *Index) GroupItems(groupID int) []string {
	ids := x.byGroup[groupID]
	out := make([]string, len(ids))
	copy(out, ids)

	return out
}

// GroupIDs lists the indexed group IDs in ascending order.
func (x *Index) GroupIDs() []int {
	ids := make([]int, 0, len(x.byGroup))
	for id := range x.byGroup {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// Extract reads an item's payload back out of its blob. The record header
// is verified against the requested ID, so a stale or shuffled index
// surfaces as ErrCorruptBlob instead of silently wrong bytes.
func (x *Index) Extract(itemID string) ([]byte, error) {
	loc, err := x.Locate(itemID)
	if err != nil {
		return nil, err
	}

	path := blobPath(x.dir, loc.GroupID)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%q: %w", path, ErrBlobMissing)
		}

		return nil, fmt.Errorf("blob: open %q: %w", path, err)
	}
	defer f.Close()

	record := make([]byte, loc.Size)
	n, err := f.ReadAt(record, loc.Offset)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("blob: read %q: %w", path, err)
	}
	if int64(n) != loc.Size {
		return nil, fmt.Errorf("%q truncated at offset %d: %w", path, loc.Offset, ErrCorruptBlob)
	}

	header := []byte(recordHeader(itemID))
	if !bytes.HasPrefix(record, header) {
		return nil, fmt.Errorf("%q at offset %d: %w", itemID, loc.Offset, ErrCorruptBlob)
	}

	return record[len(header):], nil
}
