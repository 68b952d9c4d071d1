// Package main runs monster arena battles from the command line.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"monster_arena/internal/cmd/simsvc"
)

func main() {
	cfg, err := simsvc.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := simsvc.Run(ctx, cfg); err != nil {
		log.Fatalf("simsvc: %v", err)
	}
}
