package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/addressbook/internal/logging"
	"github.com/dmitrijs2005/addressbook/internal/stubapi"
)

func main() {

	cfg, err := stubapi.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.New(cfg.LogLevel, os.Stdout)
	if err := stubapi.NewApp(cfg, logger).Run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}

}
