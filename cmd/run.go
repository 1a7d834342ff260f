package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/agglo/blob"
	"github.com/katalvlaran/agglo/cluster"
	"github.com/katalvlaran/agglo/dendro"
	"github.com/katalvlaran/agglo/report"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Cluster items and write blobs, index and reports",
	RunE:  runRun,
}

func init() {
	addItemSourceFlags(runCmd)
	runCmd.Flags().Float64("capacity", 128, "group weight ceiling")
	runCmd.Flags().String("out", "output", "output directory for blobs and reports")
	runCmd.Flags().Int64("bytes-per-unit", blob.DefaultBytesPerUnit, "payload bytes per weight unit")
	runCmd.Flags().Bool("no-blobs", false, "skip writing blob files")
	runCmd.Flags().Bool("tree", false, "print the merge dendrogram")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	log := newLogger(cmd)

	items, err := resolveItems(cmd)
	if err != nil {
		return err
	}

	capacity, _ := cmd.Flags().GetFloat64("capacity")
	log.Info().Int("items", len(items)).Float64("capacity", capacity).Msg("clustering")

	res, err := cluster.Cluster(items, capacity, cluster.WithLogger(log))
	if err != nil {
		return err
	}
	log.Info().
		Int("groups", len(res.Groups)).
		Int("merges", len(res.Merges)).
		Msg("clustering done")

	out, _ := cmd.Flags().GetString("out")

	if noBlobs, _ := cmd.Flags().GetBool("no-blobs"); !noBlobs {
		if err = writeBlobs(cmd, res, out, log); err != nil {
			return err
		}
	}

	summary := report.Summarize(res, capacity, report.NewMemoryModel())
	writer, err := report.NewWriter(out, report.WithLogger(log))
	if err != nil {
		return err
	}
	if _, err = writer.WriteSummary(summary); err != nil {
		return err
	}
	if _, err = writer.WriteText(summary); err != nil {
		return err
	}
	for _, g := range summary.Groups {
		if _, err = writer.WriteGroupMetadata(g); err != nil {
			return err
		}
	}

	if tree, _ := cmd.Flags().GetBool("tree"); tree {
		forest, err := dendro.BuildHistory(items, res.Merges)
		if err != nil {
			return err
		}
		if err = forest.Render(os.Stdout); err != nil {
			return err
		}
	}

	fmt.Printf("%d items -> %d groups (%d merges), metadata %s -> %s (saved %.1f%%)\n",
		summary.ItemCount, summary.GroupCount, summary.MergeCount,
		report.FormatBytes(summary.Memory.BeforeBytes),
		report.FormatBytes(summary.Memory.AfterBytes),
		summary.Memory.ReductionPct)
	fmt.Printf("reports in %s\n", out)

	return nil
}

func writeBlobs(cmd *cobra.Command, res *cluster.Result, out string, log zerolog.Logger) error {
	bytesPerUnit, _ := cmd.Flags().GetInt64("bytes-per-unit")
	if bytesPerUnit < 1 {
		return fmt.Errorf("bytes-per-unit must be at least 1, got %d", bytesPerUnit)
	}

	merger, err := blob.NewMerger(filepath.Join(out, "blobs"),
		blob.WithBytesPerUnit(bytesPerUnit),
		blob.WithLogger(log),
	)
	if err != nil {
		return err
	}

	idx, err := merger.WriteAll(res.Groups)
	if err != nil {
		return err
	}
	log.Info().
		Int("blobs", len(res.Groups)).
		Int("indexed_items", idx.Len()).
		Str("dir", merger.Dir()).
		Msg("blobs written")

	return nil
}
