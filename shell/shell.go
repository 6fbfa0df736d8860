// Package shell implements the interactive crible prompt.
package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/jmorin/crible/cards"
	"github.com/jmorin/crible/config"
	"github.com/jmorin/crible/discard"
	"github.com/jmorin/crible/score"
)

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config
	sel *discard.Selector
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config) *ShellController {
	return &ShellController{
		cfg: cfg,
		sel: discard.NewSelector(cfg.GetInt("threads")),
	}
}

func usage(w io.Writer) {
	showMessage(`commands:
  score <c1> <c2> <c3> <c4> [starter] - score a hand, e.g. score 5d 5h 5c js 5s
  crib <c1> <c2> <c3> <c4> <starter>  - score a crib (flush needs all 5 suited)
  discard <5 or 6 cards>              - rank every 4-card keep by expected score
  deal                                - deal 6 random cards and rank the keeps
  help                                - show this message
  exit                                - leave the shell`, w)
}

// Loop reads and executes commands until exit or EOF.
func (sc *ShellController) Loop() {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mcrible>\033[0m ",
		HistoryFile:     "/tmp/crible_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc.l = l
	defer sc.l.Close()
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}
		out, err := sc.Execute(line)
		if err != nil {
			showMessage("error: "+err.Error(), sc.l.Stderr())
			continue
		}
		showMessage(out, sc.l.Stdout())
	}
	log.Debug().Msg("leaving shell loop")
}

// Execute runs one shell command line and returns its output.
func (sc *ShellController) Execute(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", errors.New("no command given")
	}
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "help":
		var sb strings.Builder
		usage(&sb)
		return sb.String(), nil
	case "score":
		return sc.scoreCmd(args, false)
	case "crib":
		return sc.scoreCmd(args, true)
	case "discard":
		return sc.discardCmd(args)
	case "deal":
		return sc.dealCmd()
	}
	return "", fmt.Errorf("unknown command %q; try help", cmd)
}

func (sc *ShellController) scoreCmd(args []string, crib bool) (string, error) {
	cs, err := cards.ParseCards(strings.Join(args, " "))
	if err != nil {
		return "", err
	}
	var h cards.Hand
	switch len(cs) {
	case 4:
		if crib {
			return "", errors.New("a crib is scored with its starter; give 5 cards")
		}
		h, err = cards.NewHand(cs)
	case 5:
		h, err = cards.NewHandWithStarter(cs[:4], cs[4])
	default:
		return "", &cards.InvalidSizeError{Got: len(cs), Want: "4 or 5"}
	}
	if err != nil {
		return "", err
	}
	var b score.Breakdown
	if crib {
		b = score.Crib(h)
	} else {
		b = score.Hand(h)
	}
	return BreakdownString(h, b), nil
}

func (sc *ShellController) discardCmd(args []string) (string, error) {
	cs, err := cards.ParseCards(strings.Join(args, " "))
	if err != nil {
		return "", err
	}
	deal, err := cards.NewDeal(cs)
	if err != nil {
		return "", err
	}
	return ResultsString(sc.sel.Rank(deal)), nil
}

func (sc *ShellController) dealCmd() (string, error) {
	deck := cards.NewShuffledDeck()
	dealt := deck.DrawN(6)
	deal, err := cards.NewDeal(dealt)
	if err != nil {
		return "", err
	}
	header := fmt.Sprintf("dealt: %s\n", cards.CardsString(dealt))
	return header + ResultsString(sc.sel.Rank(deal)), nil
}

// BreakdownString formats a scored hand for display.
func BreakdownString(h cards.Hand, b score.Breakdown) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", h)
	fmt.Fprintf(&sb, "fifteens %2d  pairs %2d  runs %2d  flush %2d  nobs %2d\n",
		b.Fifteens, b.Pairs, b.Runs, b.Flush, b.Nobs)
	fmt.Fprintf(&sb, "total %d", b.Total)
	return sb.String()
}

// ResultsString formats a discard ranking, best keep first.
func ResultsString(results []discard.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-16s %-12s %8s %9s\n", "keep", "discard", "certain", "expected")
	for _, r := range results {
		fmt.Fprintf(&sb, "%-16s %-12s %8d %9.2f\n",
			cards.CardsString(r.Keep[:]), cards.CardsString(r.Discard),
			r.Certain, r.Expected)
	}
	return strings.TrimRight(sb.String(), "\n")
}
