package main

import (
	"context"
	"log"

	"github.com/aquiroz/invoiceportal/internal/portal/cli"
	"github.com/aquiroz/invoiceportal/internal/portal/config"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
