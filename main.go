package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/drafts/internal/app"
	"github.com/llehouerou/drafts/internal/config"
	"github.com/llehouerou/drafts/internal/errmsg"
	"github.com/llehouerou/drafts/internal/logging"
	"github.com/llehouerou/drafts/internal/state"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	logCfg := cfg.GetLogConfig()
	if err := logging.Init(logging.Config{
		FilePath:   logCfg.File,
		Level:      logging.ParseLevel(logCfg.Level),
		Format:     logging.ParseFormat(logCfg.Format),
		MaxSizeMB:  logCfg.MaxSizeMB,
		MaxBackups: logCfg.MaxBackups,
	}); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logging.Close()
	log := logging.For("main")

	stateMgr, err := state.Open(cfg.DatabasePath)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	defer func() {
		if err := stateMgr.Close(); err != nil {
			log.Error("closing state", "err", err)
		}
	}()

	log.Info("starting", "channels", len(cfg.ChannelList()))
	p := tea.NewProgram(app.New(cfg, stateMgr), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
