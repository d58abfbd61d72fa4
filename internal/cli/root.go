// Package cli wires the labeler's commands: the root command opens the labeling
// window, stats reports progress for a dataset without a display.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/image-labeler/internal/config"
	"github.com/ytget/image-labeler/internal/logging"
)

var (
	// Global flags
	configPath string
	verbose    bool
	jsonOutput bool

	logger *zap.Logger
)

// rootCmd is the root command for image-labeler.
var rootCmd = &cobra.Command{
	Use:     "image-labeler [folder]",
	Version: "dev",
	Short:   "Label a folder of images with your own classes",
	Long: `image-labeler shows the images of a dataset folder one at a time and lets you
tick the classes each image belongs to. Labels are saved next to the images in
image_labels.json.

Use m / n or the arrow keys to move between images.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// SetVersion sets the version reported by --version and the window title
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	// Assigned here rather than in the literal: runGUI reads rootCmd, which
	// would otherwise be an initialization cycle.
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		folder := ""
		if len(args) == 1 {
			folder = args[0]
		}
		return runGUI(folder)
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigFile, "Path to config.json")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the image-labeler version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(statsCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
