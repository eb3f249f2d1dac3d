package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"chess-rules/movegen"
)

const (
	NotationAlgebraic = "algebraic"
	NotationCoords    = "coords"
)

// Config holds the settings shared by the protocol front end and cmd/sweep.
type Config struct {
	Board    BoardConfig `yaml:"board"`
	Notation string      `yaml:"notation"`
	Workers  int         `yaml:"workers"`
}

// BoardConfig holds the inclusive maximum coordinates of the board.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Default is the standard 8x8 board printed in algebraic notation.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  movegen.StandardBoard.Width,
			Height: movegen.StandardBoard.Height,
		},
		Notation: NotationAlgebraic,
		Workers:  runtime.GOMAXPROCS(0),
	}
}

// Load reads a YAML file over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the finder or the sweep cannot use.
func (c Config) Validate() error {
	if err := c.MoveBoard().Validate(); err != nil {
		return err
	}
	switch c.Notation {
	case NotationAlgebraic, NotationCoords:
	default:
		return fmt.Errorf("unknown notation %q", c.Notation)
	}
	if c.Workers < 1 {
		return errors.New("workers must be at least 1")
	}
	return nil
}

// MoveBoard converts the board section into the finder's bounds.
func (c Config) MoveBoard() movegen.Board {
	return movegen.Board{Width: c.Board.Width, Height: c.Board.Height}
}
