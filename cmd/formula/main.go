package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/JoverZhang/formula"
	"github.com/JoverZhang/formula/host"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-config file] [path to file]\n", os.Args[0])
	}
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	overflow, _ := cfg.overflow()
	level, _ := cfg.logLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	catalog := formula.NewCatalog(formula.Options{Overflow: overflow})
	e := host.NewEvaluator(catalog, logger)

	switch flag.NArg() {
	case 0:
		repl(e, catalog, cfg)
	case 1:
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()

		cfg.Color = false
		p := newPrinter(os.Stdout, cfg)
		r, err := e.EvalReader(f)
		if err != nil {
			log.Fatalf("error evaluating %v: %v", flag.Arg(0), err)
		}
		p.result(r)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func repl(e *host.Evaluator, catalog *formula.Catalog, cfg config) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	if f, err := os.Open(cfg.History); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		f, err := os.Create(cfg.History)
		if err != nil {
			slog.Warn("could not save history", slog.String("path", cfg.History), slog.Any("err", err))
			return
		}
		defer f.Close()
		line.WriteHistory(f)
	}()

	p := newPrinter(os.Stdout, cfg)
	for {
		src, err := line.Prompt(cfg.Prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				continue
			}
			if errors.Is(err, io.EOF) {
				fmt.Println()
				return
			}
			p.error(err)
			return
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		line.AppendHistory(src)

		if strings.TrimSpace(src) == ":builtins" {
			p.signatures(catalog)
			continue
		}

		r, err := e.EvalString(src)
		if err != nil {
			p.error(err)
			continue
		}
		p.result(r)
	}
}
