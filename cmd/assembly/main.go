// Package main builds and inspects a batch of items with the default crew.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ib-77/assembly/internal/cmd/assemblyline"
)

func main() {
	cfg, err := assemblyline.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[ASSEMBLY] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := assemblyline.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("assembly failed: %v", err)
	}
}
