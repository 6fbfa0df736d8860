package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jmorin/crible/cards"
	"github.com/jmorin/crible/config"
	"github.com/jmorin/crible/discard"
	"github.com/jmorin/crible/score"
	"github.com/jmorin/crible/shell"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  crible                            start the interactive shell
  crible <4 cards>                  score a hand with no starter
  crible --starter <card> <4 cards> score a hand against a starter
  crible <5 cards>                  score a hand, last card is the starter
  crible <6 cards>                  rank every discard of a 6-card deal

cards are two-character tokens: rank A23456789TJQK + suit hscd, e.g. 5d Th`)
}

func main() {
	cfg := config.New()
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage()
		os.Exit(2)
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	var logger zerolog.Logger
	if cfg.GetBool("debug") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	log.Logger = logger

	if path := cfg.GetString("cpu-profile"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create CPU profile")
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		usage()
		os.Exit(1)
	}

	if path := cfg.GetString("mem-profile"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create memory profile")
		}
		defer f.Close()
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal().Err(err).Msg("could not write memory profile")
		}
	}
}

func run(cfg *config.Config) error {
	tokens := cfg.Args()
	if len(tokens) == 0 {
		shell.NewShellController(cfg).Loop()
		return nil
	}

	cs, err := cards.ParseCards(strings.Join(tokens, " "))
	if err != nil {
		return err
	}

	switch len(cs) {
	case 4:
		if st := cfg.GetString("starter"); st != "" {
			starter, err := cards.ParseCard(st)
			if err != nil {
				return err
			}
			return printScore(cs, &starter, cfg.GetBool("crib"))
		}
		return printScore(cs, nil, cfg.GetBool("crib"))
	case 5:
		starter := cs[4]
		return printScore(cs[:4], &starter, cfg.GetBool("crib"))
	case 6:
		sel := discard.NewSelector(cfg.GetInt("threads"))
		deal, err := cards.NewDeal(cs)
		if err != nil {
			return err
		}
		fmt.Println(shell.ResultsString(sel.Rank(deal)))
		return nil
	}
	return &cards.InvalidSizeError{Got: len(cs), Want: "4, 5 or 6"}
}

func printScore(kept []cards.Card, starter *cards.Card, crib bool) error {
	var h cards.Hand
	var err error
	if starter != nil {
		h, err = cards.NewHandWithStarter(kept, *starter)
	} else {
		h, err = cards.NewHand(kept)
	}
	if err != nil {
		return err
	}
	var b score.Breakdown
	if crib {
		b = score.Crib(h)
	} else {
		b = score.Hand(h)
	}
	fmt.Println(shell.BreakdownString(h, b))
	return nil
}
