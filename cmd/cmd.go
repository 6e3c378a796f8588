package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/containerd/console"
	"github.com/spf13/cobra"

	"github.com/pacebar/pace/bar"
	"github.com/pacebar/pace/envconfig"
	"github.com/pacebar/pace/logutil"
	"github.com/pacebar/pace/version"
)

// stderrIsTerminal reports whether progress output would reach a real
// console.
func stderrIsTerminal() bool {
	_, err := console.ConsoleFromFile(os.Stderr)
	return err == nil
}

// barOptions translates the shared flags and PACE_* environment into bar
// options. Flags win over the environment.
func barOptions(cmd *cobra.Command) ([]bar.Option, error) {
	var opts []bar.Option

	theme := envconfig.Theme
	if cmd.Flags().Changed("theme") {
		theme, _ = cmd.Flags().GetString("theme")
	}
	if theme != "" {
		t, err := bar.ThemeByName(theme)
		if err != nil {
			return nil, err
		}
		opts = append(opts, bar.WithTheme(t))
	}

	width := envconfig.Width
	if cmd.Flags().Changed("width") {
		width, _ = cmd.Flags().GetInt("width")
	}
	if width > 0 {
		opts = append(opts, bar.WithWidth(width))
	} else {
		opts = append(opts, bar.WithTerminalWidth())
	}

	fps := envconfig.TargetFPS
	if cmd.Flags().Changed("fps") {
		fps, _ = cmd.Flags().GetInt("fps")
	}
	if fps > 0 {
		opts = append(opts, bar.WithRefreshRate(fps))
	}

	if nocolor, _ := cmd.Flags().GetBool("no-color"); nocolor {
		opts = append(opts, bar.WithColor(false))
	}

	if simple, _ := cmd.Flags().GetBool("simple"); simple {
		opts = append(opts, bar.WithEMA(false))
	}
	if cmd.Flags().Changed("alpha") {
		alpha, _ := cmd.Flags().GetFloat64("alpha")
		opts = append(opts, bar.WithAlpha(alpha))
	}

	return opts, nil
}

func NewCLI() *cobra.Command {
	slog.SetDefault(logutil.NewLogger(os.Stderr, logutil.Level()))

	rootCmd := &cobra.Command{
		Use:   "pace [file]",
		Short: "Copy a stream to stdout with a progress line on stderr",
		Args:  cobra.MaximumNArgs(1),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Disable usage printing on errors
			cmd.SilenceUsage = true
		},
		RunE: CopyHandler,
	}

	rootCmd.PersistentFlags().StringP("theme", "t", "", "Bar theme: "+strings.Join(bar.ThemeNames(), ", "))
	rootCmd.PersistentFlags().IntP("width", "w", 0, "Fixed bar width in cells (default: fit the terminal)")
	rootCmd.PersistentFlags().Int("fps", 0, "Target redraws per second")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable color output")
	rootCmd.PersistentFlags().Bool("simple", false, "Plain windowed average instead of exponential smoothing")
	rootCmd.PersistentFlags().Float64("alpha", 0, "Exponential smoothing factor in (0, 1]")

	rootCmd.Flags().StringP("label", "l", "", "Label shown ahead of the bar")
	rootCmd.Flags().Int64P("size", "s", -1, "Expected input size in bytes when it cannot be discovered")
	rootCmd.Flags().Bool("count", false, "Show raw byte counts instead of humanized sizes")
	rootCmd.Flags().BoolP("quiet", "q", false, "Copy without drawing a bar")
	rootCmd.Flags().BoolP("force", "f", false, "Draw the bar even when stderr is not a terminal")
	rootCmd.Flags().Bool("clear", false, "Erase the bar when the copy finishes")

	cobra.EnableCommandSorting = false

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Animate sample bars through every engine mode",
		RunE:  DemoHandler,
	}
	demoCmd.Flags().Int64P("count", "n", 500, "Units of simulated work per bar")
	demoCmd.Flags().Duration("delay", 2*time.Millisecond, "Delay between units")

	envCmd := &cobra.Command{
		Use:   "env",
		Short: "Show environment variables and their current values",
		RunE:  EnvHandler,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("pace version", version.Version)
		},
	}

	rootCmd.AddCommand(
		demoCmd,
		envCmd,
		versionCmd,
	)

	return rootCmd
}
