// Command attendance-seed emits a synthetic two-collection attendance
// payload as JSON, suitable for the file roster source or for priming a
// dashboard during development.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ambutrack/attendance-backend/internal/attendance/domain"
	"github.com/ambutrack/attendance-backend/internal/attendance/seed"
)

func main() {
	var (
		drivers  = flag.Int("drivers", 50, "number of drivers to generate")
		emts     = flag.Int("emts", 50, "number of emts to generate")
		start    = flag.String("start", "", "attendance window start (YYYY-MM-DD), defaults to the first of the current month")
		randSeed = flag.Int64("seed", 0, "random seed, 0 means time-based")
		outPath  = flag.String("out", "", "output file, defaults to stdout")
	)
	flag.Parse()

	windowStart, err := resolveStart(*start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -start: %v\n", err)
		os.Exit(1)
	}

	if *randSeed == 0 {
		*randSeed = time.Now().UnixNano()
	}

	gen := seed.New(domain.DefaultShiftPolicy(), *randSeed)
	payload := gen.GeneratePayload(*drivers, *emts, windowStart)

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create output file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode payload: %v\n", err)
		os.Exit(1)
	}
}

func resolveStart(s string) (time.Time, error) {
	if s == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse("2006-01-02", s)
}
