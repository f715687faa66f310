package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"VeracityScanner/internal/app"
	"VeracityScanner/internal/config"
	"VeracityScanner/internal/logging"
)

func main() {
	url := flag.String("url", "", "source URL to score")
	text := flag.String("text", "", "article text to analyze (reads stdin when omitted)")
	flag.Parse()

	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)

	body := *text
	if body == "" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			logger.Error("cannot read stdin", "error", err)
			os.Exit(1)
		}
		body = string(raw)
	}

	ctx := context.Background()
	application := app.New(ctx, cfg, logger)
	report := application.Assess(ctx, *url, body)

	encoded, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		logger.Error("cannot encode report", "error", err)
		os.Exit(1)
	}

	fmt.Println(string(encoded))
}
