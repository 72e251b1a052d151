package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/zephyrtronium/exactcalc"
	"github.com/zephyrtronium/exactcalc/config"
	"github.com/zephyrtronium/exactcalc/observability"
)

func main() {
	log.SetFlags(0)
	var (
		inname, cfgname      string
		prec, bits           int
		force, echo, verbose bool
	)
	flag.StringVar(&inname, "in", "", "input file, one expression per line (default stdin if no args given)")
	flag.StringVar(&cfgname, "config", "", "YAML or JSON configuration file")
	flag.IntVar(&prec, "p", -1, "decimal places of real results (default 5)")
	flag.IntVar(&bits, "bits", 0, "precision of real arithmetic in bits (default 64)")
	flag.BoolVar(&force, "real", false, "print exact results as rounded reals")
	flag.BoolVar(&echo, "echo", false, "print the postfix form of each expression")
	flag.BoolVar(&verbose, "v", false, "log diagnostics to stderr")
	flag.Parse()

	level := slog.LevelWarn
	var opts []exactcalc.Option
	if cfgname != "" {
		s, err := config.Load(cfgname)
		if err != nil {
			log.Fatal(err)
		}
		opts = append(opts, s.Options()...)
		level = s.Level(level)
	}
	// Flags override the config file.
	if prec >= 0 {
		opts = append(opts, exactcalc.Precision(prec))
	}
	if bits < 0 {
		log.Fatalf("bits (%d) must be positive", bits)
	}
	if bits > 0 {
		opts = append(opts, exactcalc.Bits(uint(bits)))
	}
	if force {
		opts = append(opts, exactcalc.ForceReal())
	}
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	opts = append(opts,
		exactcalc.Logger(logger),
		exactcalc.Metrics(observability.NewMetricsRecorder()),
		exactcalc.Tracing(observability.NewSpanManager()),
	)
	p := exactcalc.New(opts...)

	exprs, err := readInput(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	exprs = append(exprs, flag.Args()...)

	failed := false
	for _, expr := range exprs {
		if echo {
			a, err := p.Postfix(expr)
			if err == nil {
				fmt.Printf("%v : ", a)
			}
		}
		r, err := p.Parse(expr)
		if err != nil {
			fmt.Println(err)
			failed = true
			continue
		}
		fmt.Println(r)
	}
	if failed {
		os.Exit(1)
	}
}

// readInput reads expressions from the named file, or from stdin if the name
// is "-" or if std is set and there is no name.
func readInput(inname string, std bool) ([]string, error) {
	f, err := infile(inname, std)
	if err != nil || f == nil {
		return nil, err
	}
	defer f.Close()
	return readLines(f)
}

func infile(inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		return f, nil
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}

// readLines reads the non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		if line := strings.TrimSpace(s.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, s.Err()
}
