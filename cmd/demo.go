package cmd

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/pacebar/pace/bar"
	"github.com/pacebar/pace/track"
)

// DemoHandler animates the engine's modes with simulated work: a counted
// loop, a byte-sized transfer, and an unknown-length stream fed from
// another goroutine.
func DemoHandler(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt64("count")
	delay, _ := cmd.Flags().GetDuration("delay")

	newBar := func(total int64, label string, extra ...bar.Option) (*bar.Bar, error) {
		opts, err := barOptions(cmd)
		if err != nil {
			return nil, err
		}
		opts = append(opts, bar.WithLabel(label))
		return bar.New(total, append(opts, extra...)...)
	}

	counted, err := newBar(count, "counted")
	if err != nil {
		return err
	}
	for range track.Range(count, counted) {
		time.Sleep(delay)
	}

	sized, err := newBar(count*1024, "sized", bar.WithBytes(true))
	if err != nil {
		return err
	}
	for i := int64(0); i < count; i++ {
		sized.Add(1024)
		time.Sleep(delay)
	}
	sized.Finish()

	streamed, err := newBar(-1, "streamed")
	if err != nil {
		return err
	}
	ch := make(chan int64)
	var g errgroup.Group
	g.Go(func() error {
		defer close(ch)
		for i := int64(0); i < count; i++ {
			ch <- i
			time.Sleep(delay)
		}
		return nil
	})
	for range track.Chan(ch, streamed) {
	}
	if err := g.Wait(); err != nil {
		return err
	}

	slog.Debug("demo finished",
		"period", streamed.Period(),
		"state", streamed.State())
	return nil
}
