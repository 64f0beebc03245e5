package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/youruser/idcardapp/internal/config"
	imagepkg "github.com/youruser/idcardapp/internal/image"
	"github.com/youruser/idcardapp/internal/logging"
	"golang.org/x/exp/slog"
)

var (
	version = "0.1.0"
	verbose bool
	cfg     = config.FromEnv()
	logger  = logging.Discard()
)

var rootCmd = &cobra.Command{
	Use:   "idcard",
	Short: "Render student identity cards",
	Long: `idcard renders the fixed-layout student identity card (400x350)
from the card fields and an optional photo, either one card at a time
or in batches from a CSV file.

The roll number is always printed masked.`,
	Version:      version,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		logger = logging.New(cmd.ErrOrStderr(), level).With(slog.String("app", "idcard"))
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&cfg.FontPath, "font", cfg.FontPath, "TrueType/OpenType font for the header (empty = bundled Go Regular)")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"idcard %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

func newRenderer() *imagepkg.Renderer {
	return imagepkg.NewRenderer(logger, imagepkg.LoadFontFile(cfg.FontPath))
}
