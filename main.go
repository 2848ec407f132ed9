package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/hdim/internal/app"
	"github.com/llehouerou/hdim/internal/config"
	"github.com/llehouerou/hdim/internal/errmsg"
	"github.com/llehouerou/hdim/internal/imageio"
	"github.com/llehouerou/hdim/internal/log"
	"github.com/llehouerou/hdim/internal/state"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <image>\n\nFlags:\n", filepath.Base(os.Args[0]))
	flag.PrintDefaults()
}

func main() {
	zoom := flag.Float64("zoom", 0, "initial zoom in source pixels per cell (0 fits the image)")
	debug := flag.Bool("debug", false, "write a debug log to the XDG state directory")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpConfigLoad, err))
		os.Exit(1)
	}

	closeLog := initLog(*debug || cfg.Debug || os.Getenv("HDIM_DEBUG") != "")
	defer closeLog()

	viewerCfg := cfg.GetViewerConfig()
	if *zoom > 0 {
		viewerCfg.InitialZoom = *zoom
	}
	log.Debug("viewer config: initial_zoom=%.2f zoom_step=%.2f input_delay=%s remember=%v",
		viewerCfg.InitialZoom, viewerCfg.ZoomStep, viewerCfg.InputDelay(), viewerCfg.Remember())

	img, err := imageio.Load(path, imageio.Options{MaxDimension: viewerCfg.MaxDimension})
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.FormatWith(errmsg.OpImageLoad, path, err))
		closeLog()
		os.Exit(1) //nolint:gocritic // log closed above
	}
	log.Info("loaded %s: %s %dx%d (original %dx%d)", path, img.Format, img.Width(), img.Height(), img.OriginalWidth, img.OriginalHeight)

	var stateMgr state.Interface
	if viewerCfg.Remember() {
		mgr, err := state.Open()
		if err != nil {
			log.Warn("%s", errmsg.Format(errmsg.OpStateOpen, err))
		} else {
			stateMgr = mgr
		}
	}

	p := tea.NewProgram(app.New(img, viewerCfg, stateMgr), tea.WithAltScreen())
	final, err := p.Run()

	if stateMgr != nil {
		if cerr := stateMgr.Close(); cerr != nil {
			log.Warn("%s", errmsg.Format(errmsg.OpViewportSave, cerr))
		}
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		closeLog()
		os.Exit(1)
	}
	if m, ok := final.(app.Model); ok && m.FatalErr != "" {
		fmt.Fprintln(os.Stderr, m.FatalErr)
		closeLog()
		os.Exit(1)
	}
}

// initLog directs debug output to a file when enabled and returns a
// function that closes it.
func initLog(enabled bool) func() {
	if !enabled {
		log.Init(io.Discard, log.LevelInfo)
		return func() {}
	}
	logPath, err := xdg.StateFile(filepath.Join("hdim", "hdim.log"))
	if err != nil {
		log.Init(io.Discard, log.LevelInfo)
		return func() {}
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Init(io.Discard, log.LevelInfo)
		return func() {}
	}
	log.Init(f, log.LevelDebug)
	return func() {
		log.Init(io.Discard, log.LevelInfo)
		_ = f.Close()
	}
}
