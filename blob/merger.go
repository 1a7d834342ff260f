package blob

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/agglo/cluster"
)

// DefaultBytesPerUnit converts item weights to payload bytes: one weight
// unit is one mebibyte, matching weights expressed in MB.
const DefaultBytesPerUnit int64 = 1 << 20

// fillByte pads every synthetic payload.
const fillByte = 'X'

// Option customizes a Merger.
type Option func(*config)

type config struct {
	log          zerolog.Logger
	bytesPerUnit int64
}

// WithLogger attaches a zerolog logger; the default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(c *config) { c.log = log }
}

// WithBytesPerUnit overrides the weight→bytes scale. Panics on n < 1.
// Tests use small units to keep fixtures tiny.
func WithBytesPerUnit(n int64) Option {
	if n < 1 {
		panic("blob: WithBytesPerUnit must be at least 1")
	}

	return func(c *config) { c.bytesPerUnit = n }
}

func newConfig(opts ...Option) config {
	c := config{
		log:          zerolog.Nop(),
		bytesPerUnit: DefaultBytesPerUnit,
	}
	for _, set := range opts {
		set(&c)
	}

	return c
}

// Merger writes one concatenated blob per group under a target directory.
type Merger struct {
	dir string
	cfg config
}

// NewMerger creates the target directory if needed and returns a Merger
// writing into it.
func NewMerger(dir string, opts ...Option) (*Merger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("blob: create directory %q: %w", dir, err)
	}

	return &Merger{dir: dir, cfg: newConfig(opts...)}, nil
}

// Dir reports the directory blobs are written into.
func (m *Merger) Dir() string { return m.dir }

// BlobPath reports the path of the blob holding a group.
func (m *Merger) BlobPath(groupID int) string {
	return blobPath(m.dir, groupID)
}

// PayloadSize converts an item weight to its payload size in bytes.
func (m *Merger) PayloadSize(weight float64) int64 {
	return int64(math.Round(weight * float64(m.cfg.bytesPerUnit)))
}

// WriteGroup writes a single group's blob and returns the index covering
// its items.
func (m *Merger) WriteGroup(g cluster.Group) (*Index, error) {
	idx := newIndex(m.dir)
	if _, err := m.writeGroup(g, idx); err != nil {
		return nil, err
	}

	return idx, nil
}

// BuildIndex computes the exact index WriteAll would produce for these
// groups, without touching disk. Useful for layout planning and dry runs.
func (m *Merger) BuildIndex(groups []cluster.Group) *Index {
	idx := newIndex(m.dir)
	for _, g := range groups {
		var offset int64
		for _, it := range g.Items {
			size := int64(len(recordHeader(it.ID))) + m.PayloadSize(it.Weight)
			idx.add(it.ID, Location{GroupID: g.ID, Offset: offset, Size: size})
			offset += size
		}
	}

	return idx
}

// WriteAll writes one blob per group and returns the index covering every
// stored item. Groups are written in the given order; items inside a blob
// keep their group order, so the index offsets are reproducible.
func (m *Merger) WriteAll(groups []cluster.Group) (*Index, error) {
	idx := newIndex(m.dir)
	for _, g := range groups {
		written, err := m.writeGroup(g, idx)
		if err != nil {
			return nil, err
		}
		m.cfg.log.Debug().
			Int("group", g.ID).
			Int("items", len(g.Items)).
			Int64("bytes", written).
			Msg("blob written")
	}

	return idx, nil
}

// writeGroup streams one group into its blob, recording a Location per item.
func (m *Merger) writeGroup(g cluster.Group, idx *Index) (int64, error) {
	path := blobPath(m.dir, g.ID)
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("blob: create %q: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	var offset int64
	for _, it := range g.Items {
		header := recordHeader(it.ID)
		payload := m.PayloadSize(it.Weight)

		if _, err = w.WriteString(header); err != nil {
			return 0, fmt.Errorf("blob: write %q: %w", path, err)
		}
		if err = writeFill(w, payload); err != nil {
			return 0, fmt.Errorf("blob: write %q: %w", path, err)
		}

		size := int64(len(header)) + payload
		idx.add(it.ID, Location{GroupID: g.ID, Offset: offset, Size: size})
		offset += size
	}
	if err = w.Flush(); err != nil {
		return 0, fmt.Errorf("blob: flush %q: %w", path, err)
	}

	return offset, nil
}

// writeFill emits n fill bytes through a fixed chunk so payloads never
// allocate proportionally to their size.
func writeFill(w *bufio.Writer, n int64) error {
	const chunkSize = 64 << 10
	chunk := [chunkSize]byte{}
	for i := range chunk {
		chunk[i] = fillByte
	}

	for n > 0 {
		step := int64(chunkSize)
		if n < step {
			step = n
		}
		if _, err := w.Write(chunk[:step]); err != nil {
			return err
		}
		n -= step
	}

	return nil
}

func blobPath(dir string, groupID int) string {
	return filepath.Join(dir, fmt.Sprintf("group_%d.bin", groupID))
}

func recordHeader(itemID string) string {
	return fmt.Sprintf("FILE: %s\n", itemID)
}
