package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/opio/bpmonitor/internal/cli"
	"github.com/opio/bpmonitor/internal/config"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
