package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/Apurer/go-gin-storefront/internal/app/api"
)

func main() {
	envFile := pflag.String("env-file", ".env", "optional dotenv file loaded before reading configuration")
	pflag.Parse()

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("failed to load %s: %v", *envFile, err)
	}

	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := api.Run(ctx, cfg); err != nil {
		log.Fatalf("storefront API failed: %v", err)
	}
}
