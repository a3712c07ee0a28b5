package main

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/philipparndt/govec/internal/batch"
	"github.com/philipparndt/govec/pkg/watcher"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (c *cli) newBatchCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Evaluate a YAML file of calculations",
		Long: `Evaluate every calculation listed in a YAML file:

  calculations:
    - name: sum
      op: add
      a: [1, 2, 3]
      b: [4, 5, 6]
    - op: scale
      a: [1, 2, 3]
      scalar: 2

With --watch the file is evaluated again whenever it changes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			var mu sync.Mutex

			runOnce := func() error {
				mu.Lock()
				defer mu.Unlock()

				f, err := batch.Load(path)
				if err != nil {
					return err
				}
				outcomes := batch.Run(f)
				if err := batch.Write(cmd.OutOrStdout(), outcomes, c.opts); err != nil {
					return err
				}
				if n := batch.Failed(outcomes); n > 0 {
					return fmt.Errorf("%d of %d calculations failed", n, len(outcomes))
				}
				return nil
			}

			if !watch {
				return runOnce()
			}

			if err := runOnce(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			}
			return c.watchBatch(cmd, path, runOnce)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-run the batch whenever the file changes")
	return cmd
}

func (c *cli) watchBatch(cmd *cobra.Command, path string, runOnce func() error) error {
	fw, err := watcher.NewFileWatcher(c.cfg.Watch.Debounce(), watcher.WithLogger(c.logger))
	if err != nil {
		return err
	}
	defer fw.Close()

	errOut := cmd.ErrOrStderr()
	err = fw.Watch([]string{path}, func(changed string) {
		fmt.Fprintf(errOut, "\n%s changed, re-running\n\n", changed)
		if err := runOnce(); err != nil {
			fmt.Fprintf(errOut, "Error: %v\n", err)
		}
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c.logger.Info("watching batch file", zap.String("path", path), zap.Duration("debounce", c.cfg.Watch.Debounce()))
	fw.Start(ctx)
	<-ctx.Done()
	return nil
}
