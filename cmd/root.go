package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"filegrid/internal/config"
	"filegrid/internal/dataset"
	"filegrid/internal/download"
	"filegrid/internal/eventbus"
	"filegrid/internal/ui"
)

var (
	configPath string
	version    = "dev"
)

// SetVersion sets the version reported by --version
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

var rootCmd = &cobra.Command{
	Use:   "filegrid [data-file]",
	Short: "Terminal grid for selecting and downloading files",
	Long: `filegrid shows rows from a TOML data file in a selectable grid.
Rows can be toggled individually or all at once, and the selected files
are written to a download manifest.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runGrid,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "Config file (default "+config.DefaultPath()+")")
	flags.String("data", "", "TOML data file with [[rows]] tables (default built-in sample)")
	flags.String("log", "", "Log file")
	flags.String("download-dir", "", "Directory download manifests are written to")
	flags.Bool("mouse", true, "Enable mouse support")
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("filegrid {{.Version}}\n")
	return rootCmd.Execute()
}

// writeDefaultConfig saves the default configuration when the config file
// does not exist yet. An existing file is never touched.
func writeDefaultConfig(svc config.ConfigService) (bool, error) {
	if _, err := os.Stat(svc.Path()); !errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err := svc.Save(config.DefaultConfig()); err != nil {
		return false, err
	}
	return true, nil
}

func runGrid(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		if err := cmd.Flags().Set("data", args[0]); err != nil {
			return err
		}
	}

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Load configuration
	configSvc := config.NewConfigService(
		config.WithPath(configPath),
		config.WithBus(bus),
		config.WithFlags(cmd.Flags()),
	)
	cfg, err := configSvc.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// Set up logging
	if cfg.Log.File != "" {
		logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
		} else {
			defer logFile.Close()
			log.SetOutput(logFile)
		}
	}
	log.Printf("Config loaded from %s (data file %q)", configSvc.Path(), cfg.DataFile)

	if wrote, err := writeDefaultConfig(configSvc); err != nil {
		log.Printf("Could not write default config: %v", err)
	} else if wrote {
		log.Printf("Wrote default config to %s", configSvc.Path())
	}

	// Create context for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize services; both subscribe to their request events
	_ = dataset.NewDatasetService(bus)
	_ = download.NewDownloadService(bus, cfg.Download.Dir)

	// Create UI model
	uiModel := ui.NewModel(bus, cfg)

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.UISettings.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(uiModel, opts...)
	uiModel.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			// Channel full, drop event
			log.Println("Event channel full, dropping event")
		}
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventRowsLoaded,
		eventbus.EventDownloadCompleted,
		eventbus.EventError,
	} {
		unsubscribe := bus.Subscribe(t, forward)
		defer unsubscribe()
	}

	// Start forwarding events to UI in background
	done := make(chan struct{})
	go func() {
		for {
			select {
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			case <-done:
				return
			}
		}
	}()
	defer close(done)

	// Run the UI
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
