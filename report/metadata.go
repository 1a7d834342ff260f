package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/agglo/cluster"
)

// Artifact file names under the writer's directory.
const (
	SummaryFileName = "summary.json"
	ReportFileName  = "report.txt"
)

// GroupSummary is the per-group slice of a RunSummary.
type GroupSummary struct {
	GroupID int      `json:"group_id"`
	Items   []string `json:"items"`
	Weight  float64  `json:"weight"`
}

// MergeSummary is one accepted merge in the serialized merge log.
type MergeSummary struct {
	ParentA  int     `json:"parent_a"`
	ParentB  int     `json:"parent_b"`
	Child    int     `json:"child"`
	Distance float64 `json:"distance"`
}

// MemoryReport captures the before/after metadata estimate of a run.
type MemoryReport struct {
	BytesPerEntry int64   `json:"bytes_per_entry"`
	BeforeBytes   int64   `json:"before_bytes"`
	AfterBytes    int64   `json:"after_bytes"`
	ReductionPct  float64 `json:"reduction_pct"`
}

// RunSummary is the machine-readable record of one clustering run.
type RunSummary struct {
	RunID       string         `json:"run_id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Capacity    float64        `json:"capacity"`
	ItemCount   int            `json:"item_count"`
	GroupCount  int            `json:"group_count"`
	MergeCount  int            `json:"merge_count"`
	TotalWeight float64        `json:"total_weight"`
	Groups      []GroupSummary `json:"groups"`
	Merges      []MergeSummary `json:"merges"`
	Memory      MemoryReport   `json:"memory"`
}

// Summarize folds a clustering result into a RunSummary. Each call mints a
// fresh run ID and timestamps the summary in UTC.
func Summarize(res *cluster.Result, capacity float64, model MemoryModel) RunSummary {
	itemCount := 0
	totalWeight := 0.0
	groups := make([]GroupSummary, 0, len(res.Groups))
	for _, g := range res.Groups {
		itemCount += len(g.Items)
		totalWeight += g.Weight
		groups = append(groups, GroupSummary{
			GroupID: g.ID,
			Items:   g.ItemIDs(),
			Weight:  g.Weight,
		})
	}

	merges := make([]MergeSummary, 0, len(res.Merges))
	for _, m := range res.Merges {
		merges = append(merges, MergeSummary{
			ParentA:  m.ParentA,
			ParentB:  m.ParentB,
			Child:    m.Child,
			Distance: m.Distance,
		})
	}

	return RunSummary{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Capacity:    capacity,
		ItemCount:   itemCount,
		GroupCount:  len(res.Groups),
		MergeCount:  len(res.Merges),
		TotalWeight: totalWeight,
		Groups:      groups,
		Merges:      merges,
		Memory: MemoryReport{
			BytesPerEntry: model.BytesPerEntry,
			BeforeBytes:   model.Footprint(itemCount),
			AfterBytes:    model.Footprint(len(res.Groups)),
			ReductionPct:  model.Reduction(itemCount, len(res.Groups)),
		},
	}
}

// Option customizes a Writer.
type Option func(*Writer)

// WithLogger attaches a zerolog logger; the default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(w *Writer) { w.log = log }
}

// Writer persists run artifacts under one directory.
type Writer struct {
	dir string
	log zerolog.Logger
}

// NewWriter creates the target directory if needed.
func NewWriter(dir string, opts ...Option) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("report: create directory %q: %w", dir, err)
	}

	w := &Writer{dir: dir, log: zerolog.Nop()}
	for _, set := range opts {
		set(w)
	}

	return w, nil
}

// WriteSummary marshals the summary as indented JSON into summary.json and
// returns the written path.
func (w *Writer) WriteSummary(s RunSummary) (string, error) {
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("report: marshal summary: %w", err)
	}

	path := filepath.Join(w.dir, SummaryFileName)
	if err = os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("report: write %q: %w", path, err)
	}
	w.log.Debug().Str("path", path).Str("run_id", s.RunID).Msg("summary written")

	return path, nil
}

// WriteGroupMetadata writes one group's breakdown as group_<id>.json and
// returns the written path.
func (w *Writer) WriteGroupMetadata(g GroupSummary) (string, error) {
	raw, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return "", fmt.Errorf("report: marshal group %d: %w", g.GroupID, err)
	}

	path := filepath.Join(w.dir, fmt.Sprintf("group_%d.json", g.GroupID))
	if err = os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("report: write %q: %w", path, err)
	}
	w.log.Debug().Str("path", path).Int("group", g.GroupID).Msg("group metadata written")

	return path, nil
}

// WriteText renders the summary as a plain-text report into report.txt and
// returns the written path.
func (w *Writer) WriteText(s RunSummary) (string, error) {
	path := filepath.Join(w.dir, ReportFileName)
	if err := os.WriteFile(path, []byte(renderText(s)), 0o644); err != nil {
		return "", fmt.Errorf("report: write %q: %w", path, err)
	}
	w.log.Debug().Str("path", path).Msg("text report written")

	return path, nil
}

func renderText(s RunSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Clustering run %s\n", s.RunID)
	fmt.Fprintf(&b, "Generated: %s\n\n", s.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Capacity:       %.2f\n", s.Capacity)
	fmt.Fprintf(&b, "Items:          %d\n", s.ItemCount)
	fmt.Fprintf(&b, "Groups:         %d\n", s.GroupCount)
	fmt.Fprintf(&b, "Merges:         %d\n", s.MergeCount)
	fmt.Fprintf(&b, "Total weight:   %.2f\n\n", s.TotalWeight)

	fmt.Fprintf(&b, "Metadata memory (at %d B per entry):\n", s.Memory.BytesPerEntry)
	fmt.Fprintf(&b, "  before: %s\n", FormatBytes(s.Memory.BeforeBytes))
	fmt.Fprintf(&b, "  after:  %s\n", FormatBytes(s.Memory.AfterBytes))
	fmt.Fprintf(&b, "  saved:  %.1f%%\n\n", s.Memory.ReductionPct)

	b.WriteString("Groups:\n")
	for _, g := range s.Groups {
		fmt.Fprintf(&b, "  group %d  weight %.2f  items %d: %s\n",
			g.GroupID, g.Weight, len(g.Items), strings.Join(g.Items, ", "))
	}

	return b.String()
}
