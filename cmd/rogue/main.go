package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/lixenwraith/cellui/app"
	"github.com/lixenwraith/cellui/audio"
	"github.com/lixenwraith/cellui/config"
	"github.com/lixenwraith/cellui/gameui"
	"github.com/lixenwraith/cellui/mapfile"
	"github.com/lixenwraith/cellui/screen"
	"github.com/lixenwraith/cellui/terminal"
	"github.com/lixenwraith/cellui/widget"
)

var (
	configFlag = flag.String("config", "rogue.toml", "Settings file; missing means defaults")
	mapFlag    = flag.String("map", "", "Map file; overrides the config, empty generates one")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/rogue.log")
	muteFlag   = flag.Bool("mute", false, "Disable sound")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "rogue: %v\n", err)
		return 2
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "rogue: stdin and stdout must be a terminal")
		return 1
	}

	var m *mapfile.Map
	if cfg.Map != "" {
		if m, err = mapfile.Load(cfg.Map); err != nil {
			fmt.Fprintf(os.Stderr, "rogue: %v\n", err)
			return 1
		}
	}

	sounds := audio.NewSoundManager()
	if err := sounds.Initialize(); err != nil {
		log.Printf("audio unavailable: %v (continuing without sound)", err)
	}
	defer sounds.Cleanup()
	sounds.SetVolume(cfg.Audio.Volume)
	sounds.SetEnabled(cfg.Audio.Enabled)

	tt, err := terminal.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "rogue: %v\n", err)
		return 1
	}
	s := screen.New(tt, widget.NewTree())
	if err := s.Init(cfg.Rows, cfg.Cols); err != nil {
		var size *screen.SizeError
		if errors.As(err, &size) {
			fmt.Fprintf(os.Stderr, "rogue: terminal is %dx%d, need at least %dx%d (rows x cols)\n",
				size.HaveRows, size.HaveCols, size.Rows, size.Cols)
			return 1
		}
		fmt.Fprintf(os.Stderr, "rogue: %v\n", err)
		return 1
	}
	// Normal exit cleanup; Loop.Run releases the screen too
	defer s.Fini()

	g, err := gameui.NewGame(s, gameui.Options{
		Title:     "rogue",
		Border:    cfg.BorderStyle(),
		Fields:    cfg.Player.Fields,
		Map:       m,
		QuitKey:   cfg.QuitKey(),
		BorderKey: cfg.BorderKey(),
		Sounds:    sounds,
	})
	if err != nil {
		s.Fini()
		fmt.Fprintf(os.Stderr, "rogue: %v\n", err)
		return 1
	}

	if err := app.NewLoop(s, g).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "rogue: %v\n", err)
		return 1
	}
	return 0
}

// loadConfig layers file, environment and flags, in that order
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}

	if *mapFlag != "" {
		cfg.Map = *mapFlag
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
