package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"fitness-tracker/internal/config"
	"fitness-tracker/internal/report"
	"fitness-tracker/internal/sensor"
	"fitness-tracker/internal/tui"
)

func main() {
	log.SetFlags(0)
	if err := run(os.Stdout, config.DefaultConfig()); err != nil {
		log.Fatal(tui.NewStyles(os.Stderr).RenderError(err))
	}
}

// run prints one summary line per sensor package, in input order.
// The first bad package stops the batch.
func run(w io.Writer, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	for i, p := range cfg.Packages {
		session, err := sensor.ReadPackage(p.Code, p.Data)
		if err != nil {
			return fmt.Errorf("reading package %d: %w", i, err)
		}
		if _, err := fmt.Fprintln(w, report.ShowTrainingInfo(session).Message()); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}

	return nil
}
