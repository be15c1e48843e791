package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/hoppxi/iconify/internal/icons"
	"github.com/hoppxi/iconify/internal/manager"
	"github.com/hoppxi/iconify/internal/notify"
	"github.com/hoppxi/iconify/internal/watchers"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep converting icons as they are dropped into the staging directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var mu sync.Mutex
		current := settings

		manager.Config.Watch(func() {
			v, _ := manager.Config.Load()
			next, err := manager.Decode(v)
			if err != nil {
				log.Printf("config reload failed: %v", err)
				return
			}
			if next.InputDir != settings.InputDir {
				log.Printf("input_dir changed to %s, restart watch to follow it", next.InputDir)
				next.InputDir = settings.InputDir
			}

			mu.Lock()
			current = next
			mu.Unlock()
			log.Println("config reloaded")
		})

		runBatch := func() error {
			mu.Lock()
			s := current
			mu.Unlock()

			report, err := s.Transformer().TransformAll(ctx)
			if report != nil && report.Changed() && s.Notify {
				if _, nerr := notify.Send(notify.Summarize(report)); nerr != nil {
					log.Printf("notification failed: %v", nerr)
				}
			}
			return err
		}

		if err := runBatch(); err != nil {
			if errors.Is(err, icons.ErrInputDirMissing) {
				return err
			}
			log.Printf("batch failed: %v", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Watching for icons. Press Ctrl+C to stop.")
		err = watchers.WatchStaging(ctx, settings.InputDir, settings.Debounce, func() {
			if err := runBatch(); err != nil {
				log.Printf("batch failed: %v", err)
			}
		})

		fmt.Fprintln(cmd.OutOrStdout(), "\nStopped watching.")
		return err
	},
}

func init() {
	watchCmd.Flags().Bool("notify", false, "send a desktop notification after each batch")
	watchCmd.Flags().Duration("debounce", 0, "quiet period before a batch runs (default 300ms)")
}
