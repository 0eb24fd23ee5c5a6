// Command calcmcp serves a scientific calculator session over the Model
// Context Protocol on stdin/stdout.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/fjl/gio-scicalc/internal/calc"
)

// config is the command line configuration.
type config struct {
	angle   calc.AngleMode
	verbose bool
}

func main() {
	var (
		angle   = flag.String("angle", "deg", "Initial angle mode (deg or rad)")
		verbose = flag.Bool("v", false, "Log every key press")
	)
	flag.Parse()

	// stdout carries the protocol.
	log.SetOutput(os.Stderr)

	mode, err := calc.ParseAngleMode(*angle)
	if err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}
	cfg := &config{angle: mode, verbose: *verbose}

	if err := newCalcServer(cfg).serve(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
