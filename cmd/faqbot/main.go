package main

import (
	"flag"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"faqbot/internal/catalog"
	"faqbot/internal/config"
	"faqbot/internal/matcher"
	"faqbot/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	var ask string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/faqbot/config.yaml if not provided)")
	flag.StringVar(&ask, "ask", "", "Answer a single question and exit instead of starting the chat")
	flag.Parse()

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	catalogPath := cfg.Catalog.Path
	if args := flag.Args(); len(args) > 0 {
		catalogPath = args[0]
	}
	entries, err := catalog.Load(catalogPath)
	if err != nil {
		log.Fatalf("failed to load catalog %s: %v", catalogPath, err)
	}

	engine, err := matcher.New(entries, matcher.Config{
		Variant:        cfg.Engine.Variant,
		VectorDim:      cfg.Engine.VectorDim,
		WindowSize:     cfg.Engine.WindowSize,
		MinTokenCount:  cfg.Engine.MinCount,
		Epochs:         cfg.Engine.Epochs,
		Threshold:      cfg.Engine.Threshold,
		Seed:           cfg.Engine.Seed,
		Fallback:       cfg.Engine.Fallback,
		ExtraStopwords: cfg.Stopwords,
	})
	if err != nil {
		log.Fatalf("failed to build engine: %v", err)
	}

	if ask != "" {
		ans, err := engine.Answer(ask)
		if err != nil {
			log.Fatalf("answer failed: %v", err)
		}
		fmt.Printf("Klausimas: %s\n", ask)
		fmt.Printf("Atsakymas: %s\n", ans.Text)
		fmt.Printf("Panašumas: %.3f\n", ans.Similarity)
		return
	}

	m := tui.New(engine)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}
