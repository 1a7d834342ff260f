package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an item manifest without clustering",
	Long: "Generate writes the items a run would cluster as a JSON manifest, " +
		"so the same population can be inspected, edited and replayed with " +
		"`agglo run --items`.",
	RunE: runGenerate,
}

func init() {
	addItemSourceFlags(generateCmd)
	generateCmd.Flags().StringP("output", "o", "-", "manifest path, - for stdout")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	items, err := resolveItems(cmd)
	if err != nil {
		return err
	}

	raw, err := marshalManifest(items)
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("output")
	if out == "-" {
		fmt.Println(string(raw))

		return nil
	}

	if err = os.WriteFile(out, append(raw, '\n'), 0o644); err != nil {
		return fmt.Errorf("write item manifest: %w", err)
	}
	fmt.Printf("wrote %d items to %s\n", len(items), out)

	return nil
}
