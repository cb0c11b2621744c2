package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/mitchellh/go-homedir"

	"github.com/lixenwraith/shapeboard/audio"
	"github.com/lixenwraith/shapeboard/config"
	"github.com/lixenwraith/shapeboard/render"
	"github.com/lixenwraith/shapeboard/tui"
	"github.com/lixenwraith/shapeboard/workspace"
)

const cueVolume = 0.3

func main() {
	var (
		configPath string
		logPath    string
		sound      bool
	)
	flag.StringVar(&configPath, "config", config.DefaultPath, "config file (.toml or .yaml)")
	flag.StringVar(&logPath, "log", "", "log file path (overrides config)")
	flag.BoolVar(&sound, "sound", false, "enable audio cues (overrides config)")
	flag.Parse()

	if err := run(configPath, logPath, sound); err != nil {
		fmt.Fprintf(os.Stderr, "shapeboard: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, logPath string, sound bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logPath != "" {
		cfg.LogFile = logPath
	}
	if sound {
		cfg.Sound = true
	}

	log, closeLog, err := openLog(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	var player audio.Player = audio.Nop{}
	if cfg.Sound {
		sp, err := audio.NewSpeaker(cueVolume)
		if err != nil {
			// Run silently
			log.Warn("audio unavailable", "error", err)
		} else {
			defer sp.Close()
			player = sp
		}
	}

	status := tui.NewStatus()
	ws, err := workspace.New(cfg,
		workspace.WithLogger(log),
		workspace.WithObserver(status.Observe),
		workspace.WithObserver(cueObserver(player)),
	)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "CRASH: %v\n%s\n", r, debug.Stack())
			os.Exit(2)
		}
		screen.Fini()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("session start",
		"edit", fmt.Sprintf("%dx%d", cfg.EditHeight, cfg.EditWidth),
		"board", fmt.Sprintf("%dx%d", cfg.BoardHeight, cfg.BoardWidth),
		"placement", cfg.Placement)

	app := tui.NewApp(screen, ws, status, log)
	err = app.Run(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}

	log.Info("session end",
		"shapes", ws.Palette().Len(),
		"placed", ws.Board().Count(),
		"board", "\n"+render.Dump(ws.Board(), ws.Overlay()))
	return err
}

// openLog builds the process logger; without a log file output is discarded
func openLog(cfg config.Config) (*slog.Logger, func(), error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, opts)), func() {}, nil
	}

	path, err := homedir.Expand(cfg.LogFile)
	if err != nil {
		return nil, nil, fmt.Errorf("log path %q: %w", cfg.LogFile, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, opts)), func() { f.Close() }, nil
}

func cueObserver(p audio.Player) workspace.Observer {
	return func(n workspace.Notice) {
		switch n.Kind {
		case workspace.NoticeCommitted:
			p.Play(audio.CueCommit)
		case workspace.NoticePlaced:
			p.Play(audio.CuePlace)
		case workspace.NoticeRejected:
			p.Play(audio.CueReject)
		}
	}
}
