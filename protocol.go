package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"chess-rules/config"
	"chess-rules/geom"
	"chess-rules/movegen"
	"chess-rules/rules"
)

func main() {
	cfgPath := flag.String("config", "", "YAML config file (board bounds, notation)")
	notation := flag.String("notation", "", "override notation: algebraic or coords")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	if *notation != "" {
		cfg.Notation = *notation
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "-notation: %v\n", err)
			os.Exit(2)
		}
	}

	if err := newSession(cfg, os.Stdout).run(os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "read stdin: %v\n", err)
		os.Exit(1)
	}
}

// session answers one command per input line.
type session struct {
	finder   *movegen.Finder
	notation string
	out      io.Writer
}

func newSession(cfg config.Config, out io.Writer) *session {
	return &session{
		finder:   movegen.NewFinder(cfg.MoveBoard()),
		notation: cfg.Notation,
		out:      out,
	}
}

func (s *session) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		if !s.handle(tokens) {
			return nil
		}
	}
	return scanner.Err()
}

// handle runs one command and reports whether the loop should continue.
func (s *session) handle(tokens []string) bool {
	switch strings.ToLower(tokens[0]) {
	case "quit":
		return false
	case "isready":
		fmt.Fprintln(s.out, "readyok")
	case "pieces":
		names := make([]string, 0, len(rules.Pieces()))
		for _, p := range rules.Pieces() {
			names = append(names, p.String())
		}
		fmt.Fprintln(s.out, "pieces", strings.Join(names, " "))
	case "rules":
		if len(tokens) != 2 {
			s.info("Malformed rules command; usage: rules <piece>")
			return true
		}
		p, err := rules.ParsePiece(tokens[1])
		if err != nil {
			s.info(err.Error())
			return true
		}
		for _, r := range rules.RulesFor(p) {
			fmt.Fprintln(s.out, "rule", r)
		}
	case "board":
		if len(tokens) != 3 {
			s.info("Malformed board command; usage: board <width> <height>")
			return true
		}
		w, errW := strconv.Atoi(tokens[1])
		h, errH := strconv.Atoi(tokens[2])
		if errW != nil || errH != nil {
			s.info("Invalid board dimensions " + tokens[1] + " " + tokens[2])
			return true
		}
		b := movegen.Board{Width: w, Height: h}
		if err := b.Validate(); err != nil {
			s.info(err.Error())
			return true
		}
		s.finder.Board = b
		s.info("board " + s.finder.Board.String())
	case "moves":
		if len(tokens) < 3 {
			s.info("Malformed moves command; usage: moves <piece> <square>")
			return true
		}
		p, err := rules.ParsePiece(tokens[1])
		if err != nil {
			s.info(err.Error())
			return true
		}
		loc, err := geom.ParseVector(strings.Join(tokens[2:], ""))
		if err != nil {
			s.info(err.Error())
			return true
		}
		if !s.finder.Board.Contains(loc) {
			s.info("Square " + loc.Coords() + " is outside board " + s.finder.Board.String())
		}
		fmt.Fprintln(s.out, s.formatMoves(s.finder.FindMoves(p, loc)))
	default:
		s.info("Unknown command " + tokens[0])
	}
	return true
}

func (s *session) formatMoves(moves []geom.Vector) string {
	var b strings.Builder
	b.WriteString("moves")
	for _, v := range moves {
		b.WriteByte(' ')
		if s.notation == config.NotationCoords || !s.finder.Board.IsStandard() {
			b.WriteString(v.Coords())
		} else {
			b.WriteString(v.String())
		}
	}
	return b.String()
}

func (s *session) info(msg string) {
	fmt.Fprintln(s.out, "info string", msg)
}
