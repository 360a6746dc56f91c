// faketv: an unattended fake-TV appliance for the Raspberry Pi.
// Plays shows from a media library in shuffled order, reacts to
// touchscreen gestures (double-tap skips, long press changes show), and
// drives the screen power from a physical switch.
package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"faketv/internal/config"
	"faketv/internal/gesture"
	"faketv/internal/library"
	"faketv/internal/media"
	"faketv/internal/player"
	"faketv/internal/probe"
	"faketv/internal/proc"
	"faketv/internal/screen"
	"faketv/internal/system"

	"github.com/spf13/cobra"
	"github.com/stianeikeland/go-rpio/v4"
)

// Build-time variables set by the Makefile via -ldflags.
var (
	version   = "dev"
	buildTime = "unknown"
)

// initialStaticWindow lets the static effect show briefly at startup
// before the first show begins.
const initialStaticWindow = 1500 * time.Millisecond

// buttonSettle is the debounce window for the power switch.
const buttonSettle = 100 * time.Millisecond

func main() {
	rootCmd := &cobra.Command{
		Use:   "faketv",
		Short: "faketv — looping fake-TV video appliance",
	}

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runCmd starts the appliance: static loop, screen button, touchscreen
// classifier, and the show selection loop. It only returns on a fatal
// error or a termination signal; crash recovery is systemd's job.
func runCmd() *cobra.Command {
	var (
		configPath  string
		dataDir     string
		touchDevice string
		startShow   string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the fake TV",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.SetFlags(log.LstdFlags | log.Lmicroseconds)
			log.Printf("faketv %s (built %s)", version, buildTime)

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if dataDir != "" {
				cfg.DataDir = dataDir
			}
			if touchDevice != "" {
				cfg.TouchDevice = touchDevice
			}

			if err := system.EnsureDir(cfg.DataDir); err != nil {
				return fmt.Errorf("data dir %s: %w", cfg.DataDir, err)
			}
			lib := library.New(cfg.DataDir)

			inv := player.Invocation{
				Video:  cfg.PlayerCommand,
				Static: cfg.StaticPlayerCommand,
			}
			if len(inv.Video) == 0 || len(inv.Static) == 0 {
				found, err := player.FindInvocation()
				if err != nil {
					return err
				}
				if len(inv.Video) == 0 {
					inv.Video = found.Video
				}
				if len(inv.Static) == 0 {
					inv.Static = found.Static
				}
			}

			// --- Screen power button (optional hardware) ---
			if err := rpio.Open(); err != nil {
				log.Printf("[main] gpio unavailable: %v — screen button disabled", err)
			} else {
				power := screen.NewPower(cfg.BacklightPin, cfg.PanelRailPin)
				btn := screen.NewButton(cfg.ButtonPin, buttonSettle, func(high bool) {
					if high {
						power.On()
					} else {
						power.Off()
					}
				})

				btnStop := make(chan struct{})
				btnDone := make(chan struct{})
				go func() {
					btn.Watch(btnStop)
					close(btnDone)
				}()
				defer func() {
					close(btnStop)
					<-btnDone
					rpio.Close()
				}()
			}

			// --- Library change logging ---
			watcher, err := library.NewWatcher(lib, nil)
			if err != nil {
				log.Printf("[main] library watcher init: %v", err)
			} else {
				go func() {
					if err := watcher.Start(); err != nil {
						log.Printf("[main] library watcher: %v", err)
					}
				}()
				defer watcher.Stop()
			}

			spawner := player.ProcSpawner{}
			tree := proc.TreeController{}

			// --- Static idle loop ---
			var static *player.Static
			if path := lib.StaticPath(); path != "" {
				static, err = player.StartStatic(spawner, tree, inv.Static, path)
				if err != nil {
					log.Printf("[main] static start failed: %v", err)
				} else {
					// Show the effect a moment before the first show.
					time.Sleep(initialStaticWindow)
				}
			} else {
				log.Printf("[main] no %s in %s, skipping static", media.StaticFilename, cfg.DataDir)
			}
			defer static.Kill()

			// --- Gesture producer ---
			queue := gesture.NewQueue()
			src, err := gesture.OpenTouchSource(cfg.TouchDevice)
			if err != nil {
				return err
			}
			classifier := gesture.NewClassifier(src, queue)

			touchErrCh := make(chan error, 1)
			go func() {
				touchErrCh <- classifier.Run()
			}()

			// --- Playback consumer ---
			pl := player.New(lib, spawner, tree, queue.Commands(), static, inv.Video)
			playErrCh := make(chan error, 1)
			go func() {
				playErrCh <- pl.Run(startShow)
			}()

			// --- Graceful shutdown ---
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			select {
			case sig := <-sigCh:
				log.Printf("[main] received signal: %v — shutting down", sig)
				pl.Stop()
				<-playErrCh
				return nil

			case err := <-playErrCh:
				// Fatal: unknown start show, unreadable library, or a
				// player that cannot be spawned.
				return err

			case err := <-touchErrCh:
				// The touch device died; exit and let the supervisor
				// restart the whole service.
				pl.Stop()
				<-playErrCh
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to config.json")
	cmd.Flags().StringVarP(&dataDir, "data", "d", "", "Show library directory (overrides config)")
	cmd.Flags().StringVar(&touchDevice, "touch-device", "", "Touchscreen evdev device (overrides config)")
	cmd.Flags().StringVarP(&startShow, "show", "s", "", "Show to start with (must exist in the library)")

	return cmd
}

func checkCmd() *cobra.Command {
	var (
		configPath string
		dataDir    string
		doProbe    bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run a system health check",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.SetFlags(log.LstdFlags)

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if dataDir != "" {
				cfg.DataDir = dataDir
			}

			health := system.Snapshot(cfg.DataDir)
			fmt.Printf("CPU Temperature : %.1f°C\n", health.CPUTempC)
			fmt.Printf("Disk Usage      : %.1f%%\n", health.DiskUsedPct)
			fmt.Printf("Disk Free       : %d MB\n", health.DiskFreeBytes/1024/1024)
			fmt.Printf("Throttled       : %v\n", health.Throttled)

			if !doProbe {
				return nil
			}

			results, err := probe.Library(library.New(cfg.DataDir))
			if err != nil {
				return err
			}

			bad := 0
			for _, r := range results {
				if r.Err != nil {
					bad++
					fmt.Printf("BAD  %s: %v\n", r.Path, r.Err)
				} else {
					fmt.Printf("OK   %s\n", r.Path)
				}
			}
			if bad > 0 {
				return fmt.Errorf("%d of %d media files failed the probe", bad, len(results))
			}
			fmt.Printf("Probed %d media files, all OK\n", len(results))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to config.json")
	cmd.Flags().StringVarP(&dataDir, "data", "d", "", "Show library directory (overrides config)")
	cmd.Flags().BoolVar(&doProbe, "probe", false, "Open every video in the library")

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("faketv %s\nBuilt: %s\n", version, buildTime)
		},
	}
}
