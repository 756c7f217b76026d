package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"orchat/chat"
	"orchat/config"
	"orchat/provider"
	"orchat/session"
)

const Version = "v0.01.00"

func main() {
	// Load .env if present; real environment variables win.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	config.InitDebugLog(cfg.DataDir())

	p, err := provider.NewProvider(provider.Config{
		Type:    provider.ProviderTypeOpenRouter,
		URL:     cfg.APIURL,
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		Referer: cfg.Referer,
		Title:   cfg.Title,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	sess := session.New(p, cfg.DefaultSystemPrompt)

	if config.DebugLog != nil {
		config.DebugLog.Printf("=== orchat %s starting: model=%s session=%s ===", Version, p.GetModel(), sess.ID)
	}

	if err := chat.Loop(context.Background(), cfg, sess, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
