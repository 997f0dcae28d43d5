// Command kinetic-demo scrolls a long list in the terminal with touch-style
// physics: drag with the mouse, throw, wheel, and pull the left drawer from
// the edge. Without a terminal on stdout it plays a scripted session instead
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-isatty"

	"github.com/lixenwraith/kinetic/config"
	"github.com/lixenwraith/kinetic/engine"
	"github.com/lixenwraith/kinetic/parameter"
	"github.com/lixenwraith/kinetic/store"
)

var (
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/kinetic-demo.log")
	configFlag = flag.String("config", "", "Settings file (.toml, .yaml)")
	stateFlag  = flag.String("state", "", "Database file that keeps the list position between runs")
	soundFlag  = flag.Bool("sound", false, "Tick on page changes")
	pagingFlag = flag.Bool("paging", false, "Snap the list to screen pages")
	dumpFlag   = flag.String("dump-config", "", "Write the effective settings to a TOML file and exit")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			crash("KINETIC-DEMO", r)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
	if *dumpFlag != "" {
		if err := cfg.Write(*dumpFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write config: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		if err := runSim(cfg, os.Stdout, log.Default()); err != nil {
			fmt.Fprintf(os.Stderr, "Simulation failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads -config over the defaults, then the environment and flags
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()
	if *pagingFlag {
		cfg.Scroll.SnapToPages = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	screen.EnableFocus()

	a, err := newApp(cfg, engine.NewMonotonicTimeProvider(), log.Default())
	if err != nil {
		return err
	}
	defer a.close()
	a.resize(screen.Size())

	if *soundFlag {
		if a.sound, err = newClicker(); err != nil {
			log.Printf("Audio initialization failed: %v", err)
		}
		defer a.sound.close()
	}

	if *stateFlag != "" {
		positions, err := store.Open(*stateFlag)
		if err != nil {
			log.Printf("State disabled: %v", err)
		} else {
			defer positions.Close()
			a.restore(positions)
			defer a.save()
		}
	}

	eventChan := make(chan tcell.Event, 256)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				crash("EVENT POLLER", r)
			}
		}()
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return nil
			}
		case <-frameTicker.C:
			a.frame()
			a.render(screen)
		}
	}
}
