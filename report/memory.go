package report

import "fmt"

// DefaultBytesPerEntry is the assumed metadata cost of tracking one object,
// the figure commonly quoted for HDFS namenode entries.
const DefaultBytesPerEntry int64 = 150

// MemoryModel estimates metadata memory as a flat cost per tracked entry.
type MemoryModel struct {
	BytesPerEntry int64
}

// NewMemoryModel returns a model at the default per-entry cost.
func NewMemoryModel() MemoryModel {
	return MemoryModel{BytesPerEntry: DefaultBytesPerEntry}
}

// Footprint estimates the bytes needed to track n entries.
func (m MemoryModel) Footprint(entries int) int64 {
	return int64(entries) * m.BytesPerEntry
}

// Reduction reports the percentage saved by shrinking the entry count from
// before to after. A zero before yields 0.
func (m MemoryModel) Reduction(before, after int) float64 {
	if before == 0 {
		return 0
	}

	return (1 - float64(after)/float64(before)) * 100
}

// FormatBytes renders a byte count with a binary unit, one decimal place
// past the KB threshold: "450 B", "1.5 KB", "14.2 MB".
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	value, suffix := float64(n), ""
	for _, s := range []string{"KB", "MB", "GB", "TB"} {
		value /= unit
		suffix = s
		if value < unit {
			break
		}
	}

	return fmt.Sprintf("%.1f %s", value, suffix)
}
