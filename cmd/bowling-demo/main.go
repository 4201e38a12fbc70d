package main

import (
	"flag"
	"log"
	"os"

	democmd "github.com/MJE43/bowling-score-go/internal/cmd/demo"
)

func main() {
	cfg, err := democmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[BOWLING-DEMO] ")

	if err := democmd.Run(cfg, os.Stdout); err != nil {
		log.Fatalf("demo failed: %v", err)
	}
}
