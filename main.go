package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"goban/board"
	"goban/config"
	"goban/geom"
	"goban/stone"
)

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "new [dim] - start a fresh board (default dim from config)\n")
	io.WriteString(w, "play <b|w> <coord> - commit a move, e.g. play b D4\n")
	io.WriteString(w, "legal <b|w> <coord> - classify a prospective capture (none/valid/ko)\n")
	io.WriteString(w, "info <coord> - group, liberties and atari status of a point\n")
	io.WriteString(w, "score - captured stones plus the eye estimate\n")
	io.WriteString(w, "show - render the board\n")
	io.WriteString(w, "validate - run the from-scratch invariant check\n")
	io.WriteString(w, "exit - quit\n")
}

type shell struct {
	cfg config.Config
	b   *board.Board
}

func (s *shell) newBoard(dim int) error {
	b, err := board.EmptyBoardWindow(dim, s.cfg.KoHistoryWindow)
	if err != nil {
		return err
	}
	s.b = b
	return nil
}

func (s *shell) parsePoint(colorStr, coord string) (stone.Color, int, error) {
	c, err := stone.Parse(colorStr)
	if err != nil {
		return stone.Empty, 0, err
	}
	idx, err := geom.ParseLabel(s.b.Dim(), coord)
	if err != nil {
		return stone.Empty, 0, err
	}
	return c, idx, nil
}

func (s *shell) execute(out io.Writer, args []string) error {
	switch args[0] {
	case "new":
		dim := s.cfg.BoardDim
		if len(args) > 1 {
			if _, err := fmt.Sscanf(args[1], "%d", &dim); err != nil {
				return fmt.Errorf("bad dimension %q", args[1])
			}
		}
		if err := s.newBoard(dim); err != nil {
			return err
		}
		fmt.Fprint(out, s.b.ToDisplayText())
	case "play":
		if len(args) != 3 {
			return fmt.Errorf("usage: play <b|w> <coord>")
		}
		c, idx, err := s.parsePoint(args[1], args[2])
		if err != nil {
			return err
		}
		if err := s.b.Play(c, idx); err != nil {
			return err
		}
		fmt.Fprint(out, s.b.ToDisplayText())
	case "legal":
		if len(args) != 3 {
			return fmt.Errorf("usage: legal <b|w> <coord>")
		}
		c, idx, err := s.parsePoint(args[1], args[2])
		if err != nil {
			return err
		}
		if s.b.Color(idx) != stone.Empty {
			fmt.Fprintf(out, "%s is occupied\n", args[2])
			return nil
		}
		fmt.Fprintf(out, "capture-type: %v\n", s.b.CaptureType(c, idx))
	case "info":
		if len(args) != 2 {
			return fmt.Errorf("usage: info <coord>")
		}
		idx, err := geom.ParseLabel(s.b.Dim(), args[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %v, group size %d, liberties %d, atari %v\n",
			args[1], s.b.Color(idx), len(s.b.Group(idx)), s.b.Liberties(idx), s.b.Atari(idx))
	case "score":
		final := s.b.FinalScore()
		captures := s.b.Captures()
		fmt.Fprintf(out, "white %d (captures %d), black %d (captures %d)\n",
			final.White, captures.White, final.Black, captures.Black)
	case "show":
		fmt.Fprint(out, s.b.ToDisplayText())
	case "validate":
		s.b.ValidatePositions()
		fmt.Fprintln(out, "ok")
	default:
		return fmt.Errorf("unrecognized command %q", args[0])
	}
	return nil
}

func main() {
	cfg := config.DefaultConfig()
	if err := cfg.Load(); err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	s := &shell{cfg: cfg}
	if err := s.newBoard(cfg.BoardDim); err != nil {
		log.Fatal().Err(err).Msg("creating board")
	}

	l, err := readline.NewEx(&readline.Config{
		Prompt:      "\033[31mgoban>\033[0m ",
		HistoryFile: "/tmp/goban_readline.tmp",
		EOFPrompt:   "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()

	for {
		line, err := l.Readline()
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
		if line == "bye" || line == "exit" {
			break
		}
		if line == "help" {
			usage(l.Stderr())
			continue
		}
		args, err := shellquote.Split(line)
		if err != nil {
			fmt.Fprintf(l.Stderr(), "error: %v\n", err)
			continue
		}
		if err := s.execute(os.Stdout, args); err != nil {
			fmt.Fprintf(l.Stderr(), "error: %v\n", err)
		}
	}
	log.Info().Msg("bye")
}
