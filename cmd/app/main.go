package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/focusring/internal/config"
	"github.com/akyairhashvil/focusring/internal/database"
	"github.com/akyairhashvil/focusring/internal/session"
	"github.com/akyairhashvil/focusring/internal/shell"
	"github.com/akyairhashvil/focusring/internal/timer"
	"github.com/akyairhashvil/focusring/internal/tui"
	"github.com/akyairhashvil/focusring/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

func main() {
	shellMode := flag.Bool("shell", false, "use the line-oriented shell instead of the full-screen view")
	configPath := flag.String("config", "", "path to config.yaml (default: <config dir>/config.yaml)")
	initConfig := flag.Bool("init-config", false, "write the effective config file and exit")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 1. Load configuration
	dataDir := util.DataDir(config.AppName)
	util.MustSucceed("create data dir", os.MkdirAll(dataDir, 0o755))
	cfgPath := resolveConfigPath(*configPath, util.ConfigDir(config.AppName))
	cfg, err := config.Load(cfgPath, dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ignoring config file: %v\n", err)
	}
	if *initConfig {
		util.MustSucceed("write config", config.Save(cfgPath, cfg))
		fmt.Println(cfgPath)
		return
	}

	useShell := *shellMode || !term.IsTerminal(int(os.Stdout.Fd()))

	// 2. Open the database and restore the last session
	var sched timer.Scheduler = timer.TickerScheduler{}
	var ticks *tui.TickScheduler
	if !useShell {
		ticks = tui.NewTickScheduler()
		sched = ticks
	}
	db, ctrl, err := openApp(ctx, cfg, sched)
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3. Run the chosen front end
	if useShell {
		sh, err := shell.New(ctx, ctrl, shell.Options{Reports: db, ReportsDir: cfg.ReportsDir})
		if err != nil {
			fmt.Printf("Alas, there's been an error: %v\n", err)
			return
		}
		log.SetOutput(sh.Stdout())
		sh.Run()
		// Stop rather than Pause: the stored session keeps isRunning, so the
		// next launch offers "Press Start Button".
		ctrl.Stop()
		return
	}

	logFile, err := tea.LogToFile(filepath.Join(dataDir, config.LogFileName), config.AppName)
	if err != nil {
		util.SilenceLogs()
	} else {
		defer logFile.Close()
	}

	model := tui.NewModel(ctx, ctrl, ticks, tui.Options{Reports: db, ReportsDir: cfg.ReportsDir})
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	ctrl.Stop()
}

func resolveConfigPath(flagValue, configDir string) string {
	if flagValue != "" {
		return flagValue
	}
	return filepath.Join(configDir, config.ConfigFileName)
}

// openApp opens the database and builds a restored controller whose timer
// ticks through sched.
func openApp(ctx context.Context, cfg config.App, sched timer.Scheduler) (*database.Database, *session.Controller, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.DBFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create database dir: %w", err)
	}
	db, err := database.Open(ctx, cfg.DBFile)
	if err != nil {
		return nil, nil, err
	}
	ctrl := session.New(ctx, db, timer.New(sched, config.TickInterval))
	ctrl.Restore()
	return db, ctrl, nil
}
