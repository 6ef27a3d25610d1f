package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/arrow-bubbles/internal/config"
	"github.com/iburimskiy/arrow-bubbles/internal/game"
	"github.com/iburimskiy/arrow-bubbles/internal/sound"
)

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default settings")
	dumpConfig := flag.Bool("dump-config", false, "Print the effective config as YAML and exit")
	mute := flag.Bool("mute", false, "Start with sound muted")
	flag.Parse()

	log.SetFlags(log.Ltime)
	log.SetPrefix("bubbles: ")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	if *dumpConfig {
		out, err := cfg.Dump()
		if err != nil {
			log.Fatal(err)
		}
		os.Stdout.Write(out)
		return
	}

	player := sound.NewPlayer(cfg.Sound, sound.Speaker())
	if cfg.Sound.Enabled {
		if err := player.Init(); err != nil {
			log.Printf("Warning: sound disabled: %v", err)
		}
	}
	player.SetMuted(*mute)
	if cfg.Sound.CueFile != "" {
		if err := player.LoadCue(cfg.Sound.CueFile); err != nil {
			log.Printf("Warning: using synthesized tones: %v", err)
		}
	}

	ebiten.SetWindowSize(int(float64(cfg.Window.Width)*cfg.Window.Scale), int(float64(cfg.Window.Height)*cfg.Window.Scale))
	ebiten.SetWindowTitle(cfg.Window.Title)

	g := game.NewGame(cfg, player)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
