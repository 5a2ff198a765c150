// Package main is the entry point for WarriorTower.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"

	"github.com/samdwyer/warriortower/internal/game"
	"github.com/samdwyer/warriortower/internal/gamedata"
	"github.com/samdwyer/warriortower/internal/level"
	"github.com/samdwyer/warriortower/internal/script"
	"github.com/samdwyer/warriortower/internal/telemetry"
	"github.com/samdwyer/warriortower/internal/ui"
)

func main() {
	levelRef := flag.String("level", "beginner/1", "tower/number from the catalog, or a .json/.yaml level file")
	scriptPath := flag.String("script", "", "Lua file defining playTurn(warrior)")
	interactive := flag.Bool("tui", false, "step through the level in the terminal")
	list := flag.Bool("list", false, "list the built-in towers and exit")
	flag.Parse()

	// Load .env file for local development
	// This makes HONEYCOMB_WARRIORTOWER_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	if *list {
		listTowers()
		return
	}
	if *scriptPath == "" {
		log.Fatal("-script is required")
	}

	if err := start(*levelRef, *scriptPath, *interactive); err != nil {
		var pse *game.PlayerScriptError
		if errors.As(err, &pse) {
			log.Fatalf("Your warrior script failed: %v", pse)
		}
		log.Fatalf("Game error: %v", err)
	}
}

// start wires signals and telemetry around run so their cleanup happens
// before main exits.
func start(levelRef, scriptPath string, interactive bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx, telemetry.Run{
		Level:       levelRef,
		Script:      scriptPath,
		Interactive: interactive,
	})
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
		// Continue without telemetry - game still works
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	return run(ctx, levelRef, scriptPath, interactive)
}

func run(ctx context.Context, levelRef, scriptPath string, interactive bool) error {
	cfg, err := game.ParseConfig()
	if err != nil {
		return err
	}

	def, palette, err := loadLevel(levelRef)
	if err != nil {
		return err
	}

	player, err := script.LoadFile(scriptPath)
	if err != nil {
		return err
	}

	if !interactive {
		// Headless runs always narrate to stdout.
		out := log.New(os.Stdout, "", 0)
		g, err := game.New(ctx, def, player, cfg, game.WithLogger(out))
		if err != nil {
			return err
		}
		res, err := g.Run(ctx)
		report(res)
		return err
	}

	g, err := game.New(ctx, def, player, cfg)
	if err != nil {
		return err
	}
	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	viewer := ui.NewViewer(screen, ui.NewRenderer(screen, palette), g)
	res, err := viewer.Run(ctx)
	screen.Close()
	report(res)
	return err
}

// loadLevel resolves a catalog reference like "beginner/2" or a level file path.
func loadLevel(ref string) (level.Definition, map[string]tcell.Color, error) {
	var (
		ld      gamedata.LevelDef
		palette map[string]tcell.Color
		err     error
	)

	switch strings.ToLower(filepath.Ext(ref)) {
	case ".json", ".yaml", ".yml":
		ld, err = gamedata.LoadLevelFile(ref)
		if err != nil {
			return level.Definition{}, nil, err
		}
	default:
		towerID, number, ok := strings.Cut(ref, "/")
		if !ok {
			return level.Definition{}, nil, fmt.Errorf("level %q: want tower/number or a level file", ref)
		}
		n, err := strconv.Atoi(number)
		if err != nil {
			return level.Definition{}, nil, fmt.Errorf("level %q: bad number: %w", ref, err)
		}
		towers := gamedata.MustLoadTowerRegistry()
		ld, err = towers.Level(towerID, n)
		if err != nil {
			return level.Definition{}, nil, err
		}
		palette = towers.GetByID(towerID).Palette()
	}

	def, err := ld.Definition(gamedata.DefaultAbilities(), gamedata.DefaultBehaviors())
	if err != nil {
		return level.Definition{}, nil, err
	}
	return def, palette, nil
}

func report(res game.Result) {
	log.Printf("%s after %d turns: health %d, score %d", res.Phase, res.Turns, res.Health, res.Score)
}

func listTowers() {
	for _, tower := range gamedata.MustLoadTowerRegistry().All() {
		fmt.Printf("%s (%s): %d levels\n", tower.ID, tower.Name, tower.LevelCount())
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Always set headers from our API key - the .env file may have an unexpanded
	// variable reference that doesn't work, so we construct it properly here
	apiKey := os.Getenv("HONEYCOMB_WARRIORTOWER_API_KEY")
	dataset := os.Getenv("HONEYCOMB_WARRIORTOWER_DATASET")
	if dataset == "" {
		dataset = "warriortower" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
