package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/image-labeler/internal/model"
	"github.com/ytget/image-labeler/internal/platform"
	"github.com/ytget/image-labeler/internal/store"
)

var statsExtensions []string

var statsCmd = &cobra.Command{
	Use:   "stats <folder>",
	Short: "Print labeling progress for a dataset folder",
	Long: `Print how many images of a dataset folder are labeled and how many images
carry each class. The label file is read but never written.`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringSliceVar(&statsExtensions, "ext", platform.DefaultImageExtensions, "Image extensions to count")
}

// statsReport is the --json shape of the stats command
type statsReport struct {
	Dataset   string       `json:"dataset"`
	Images    int          `json:"images"`
	Labeled   int          `json:"labeled"`
	Unlabeled int          `json:"unlabeled"`
	Classes   []classCount `json:"classes"`
}

type classCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func runStats(cmd *cobra.Command, args []string) error {
	dir, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", args[0], err)
	}

	doc, err := store.Load(dir)
	if err != nil {
		return err
	}
	images, err := platform.ScanImages(dir, statsExtensions)
	if err != nil {
		return err
	}

	stats := doc.Stats(images)
	if logger != nil {
		logger.Debug("Stats computed", zap.String("dir", dir), zap.Int("images", stats.Images))
	}

	if jsonOutput {
		return writeStatsJSON(cmd.OutOrStdout(), dir, stats)
	}
	return writeStatsText(cmd.OutOrStdout(), dir, stats)
}

func writeStatsJSON(w io.Writer, dir string, stats model.Stats) error {
	report := statsReport{
		Dataset:   dir,
		Images:    stats.Images,
		Labeled:   stats.Labeled,
		Unlabeled: stats.Unlabeled,
		Classes:   make([]classCount, len(stats.PerClass)),
	}
	for i, c := range stats.PerClass {
		report.Classes[i] = classCount{Name: c.Name, Count: c.Count}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func writeStatsText(w io.Writer, dir string, stats model.Stats) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Dataset:\t%s\n", dir)
	fmt.Fprintf(tw, "Images:\t%d\n", stats.Images)
	fmt.Fprintf(tw, "Labeled:\t%d\n", stats.Labeled)
	fmt.Fprintf(tw, "Unlabeled:\t%d\n", stats.Unlabeled)
	if len(stats.PerClass) > 0 {
		fmt.Fprintln(tw, "Classes:")
		for _, c := range stats.PerClass {
			fmt.Fprintf(tw, "  %s\t%d\n", c.Name, c.Count)
		}
	}
	return tw.Flush()
}
