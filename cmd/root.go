package cmd

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pacebar/pace/bar"
)

// CopyHandler pipes a file or stdin to stdout, metering bytes on stderr.
// Without a terminal on stderr it degrades to a plain copy unless forced.
func CopyHandler(cmd *cobra.Command, args []string) error {
	label, _ := cmd.Flags().GetString("label")

	in := os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
		if label == "" {
			label = filepath.Base(args[0])
		}
	}

	quiet, _ := cmd.Flags().GetBool("quiet")
	force, _ := cmd.Flags().GetBool("force")
	if quiet || (!force && !stderrIsTerminal()) {
		_, err := io.Copy(os.Stdout, in)
		return err
	}

	size, _ := cmd.Flags().GetInt64("size")
	if size <= 0 {
		size = -1
		if fi, err := in.Stat(); err == nil && fi.Mode().IsRegular() {
			size = fi.Size()
		}
	}

	opts, err := barOptions(cmd)
	if err != nil {
		return err
	}
	count, _ := cmd.Flags().GetBool("count")
	opts = append(opts, bar.WithBytes(!count), bar.WithLabel(label))
	if clear, _ := cmd.Flags().GetBool("clear"); clear {
		opts = append(opts, bar.WithClearOnFinish())
	}

	b, err := bar.New(size, opts...)
	if err != nil {
		return err
	}

	stop := watchResize(b)
	defer stop()

	if _, err := io.Copy(os.Stdout, bar.NewReader(in, b)); err != nil {
		b.Stop()
		return err
	}
	b.Finish()

	slog.Debug("copy finished", "bytes", b.Current(), "period", b.Period(), "state", b.State())
	return nil
}
