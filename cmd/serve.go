package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/omnibuildplatform/omni-cql/app"
	"github.com/omnibuildplatform/omni-cql/application"
)

var gateway *application.Gateway

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "run the CQL query gateway",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

func printVersion() {
	app.Logger.Info("============ Release Info ============")
	app.Logger.Info(fmt.Sprintf("Git Tag: %s", app.Info.Tag))
	app.Logger.Info(fmt.Sprintf("Git CommitID: %s", app.Info.CommitID))
	app.Logger.Info(fmt.Sprintf("Released At: %s", app.Info.ReleaseAt))
}

func runServer() error {
	printVersion()
	listenSignals()
	application.InitServer()
	var err error
	gateway, err = application.NewGateway(app.AppConfig, application.RouterGroup().Group("/cql"), app.Logger)
	if err != nil {
		return fmt.Errorf("failed to create query gateway: %w", err)
	}
	if err := gateway.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize query gateway: %w", err)
	}
	go watchConfigDir()
	app.Logger.Info(fmt.Sprintf("============  Begin Running(PID: %d) ============", os.Getpid()))
	application.Run()
	return nil
}

// watchConfigDir reloads the gateway when files under the config directory
// change. Changes are debounced on a ticker since editors fire several events
// per save.
func watchConfigDir() {
	var changed bool
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		app.Logger.Error(fmt.Sprintf("[dir watcher] failed to create watcher: %v", err))
		return
	}
	defer watcher.Close()
	signalTicker := time.NewTicker(10 * time.Second)
	defer signalTicker.Stop()
	if err = watcher.Add(configDir); err != nil {
		app.Logger.Error(fmt.Sprintf("[dir watcher] failed to add directory %s to watch list: %v", configDir, err))
		return
	}
	app.Logger.Info(fmt.Sprintf("[dir watcher] directory %s added to watch list", configDir))
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Chmod != fsnotify.Chmod {
				app.Logger.Info(fmt.Sprintf("[dir watcher] modified file: %s", event.Name))
				changed = true
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			app.Logger.Error(fmt.Sprintf("[dir watcher] error: %v", err))
		case _, ok := <-signalTicker.C:
			if !ok {
				return
			}
			if changed {
				gateway.Reload()
				changed = false
			}
		}
	}
}

// listenSignals Graceful start/stop server
func listenSignals() {
	sigChan := make(chan os.Signal, 10)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP)

	go handleSignals(sigChan)
}

// handleSignals handle process signal
func handleSignals(c chan os.Signal) {
	var quit = false
	app.Logger.Info("Notice: System signal monitoring is enabled(watch: SIGINT,SIGTERM,SIGQUIT,SIGHUP)")
	for !quit {
		s, ok := <-c
		if !ok {
			break
		}
		switch s {
		case syscall.SIGHUP:
			app.Logger.Info("Configuration reload")
			if gateway != nil {
				gateway.Reload()
			}
		case syscall.SIGINT:
			app.Logger.Info("Shutdown by Ctrl+C")
			quit = true
		case syscall.SIGTERM:
			app.Logger.Info("Shutdown quickly")
			quit = true
		case syscall.SIGQUIT:
			app.Logger.Info("Shutdown gracefully")
			quit = true
		}
	}
	_ = app.Logger.Sync()

	if gateway != nil {
		gateway.Close()
	}
	time.Sleep(time.Second * 1)
	app.Logger.Info("GoodBye...")
	os.Exit(0)
}
