// Package options holds the command-line plumbing shared by the lightsout
// commands: flag values, director lookup, flag-over-env precedence for serve
// and the solve output format. It does not link the window, so it can be
// tested headless.
package options

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/they4kman/lightsout/config"
	"github.com/they4kman/lightsout/director/optimal"
	"github.com/they4kman/lightsout/director/random"
	"github.com/they4kman/lightsout/game"
	"github.com/they4kman/lightsout/solver"
)

type DifficultyValue game.Difficulty

func NewDifficultyValue(val game.Difficulty, p *game.Difficulty) *DifficultyValue {
	*p = val
	return (*DifficultyValue)(p)
}

func (diffVal *DifficultyValue) String() string {
	return game.Difficulty(*diffVal).String()
}

func (diffVal *DifficultyValue) Set(value string) error {
	if d, isValid := game.Difficulties[strings.ToLower(value)]; isValid {
		*diffVal = DifficultyValue(d)
		return nil
	} else {
		return fmt.Errorf("invalid difficulty (want easy, medium or hard)")
	}
}

func (diffVal *DifficultyValue) Type() string {
	return "difficulty"
}

type ShuffleModeValue game.ShuffleMode

func NewShuffleModeValue(val game.ShuffleMode, p *game.ShuffleMode) *ShuffleModeValue {
	*p = val
	return (*ShuffleModeValue)(p)
}

func (modeVal *ShuffleModeValue) String() string {
	return game.ShuffleMode(*modeVal).String()
}

func (modeVal *ShuffleModeValue) Set(value string) error {
	mode, isValid := game.ShuffleModes[strings.ToLower(value)]
	if !isValid {
		return fmt.Errorf("invalid shuffle mode (want presses or toggles)")
	}
	*modeVal = ShuffleModeValue(mode)
	return nil
}

func (modeVal *ShuffleModeValue) Type() string {
	return "shuffle"
}

var directors = map[string]func() game.Director{
	"none":    func() game.Director { return nil },
	"optimal": func() game.Director { return &optimal.Director{} },
	"random":  func() game.Director { return &random.Director{} },
}

// NewDirector looks up a director by name, ignoring case. "none" yields a nil
// director, i.e. manual play.
func NewDirector(name string) (game.Director, error) {
	newFunc, ok := directors[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown director %q (want none, optimal or random)", name)
	}
	return newFunc(), nil
}

// PrintPresses writes one "row col" line per press
func PrintPresses(out io.Writer, presses []solver.Position) error {
	for _, press := range presses {
		if _, err := fmt.Fprintf(out, "%d %d\n", press.Row, press.Col); err != nil {
			return err
		}
	}
	return nil
}

// ApplyServeFlags overrides cfg with each of port, data, public, log-level and
// log-json that was set on the command line. Flags missing from the set, or
// left at their defaults, keep the value cfg got from the environment.
func ApplyServeFlags(cfg config.Server, flags *pflag.FlagSet) (config.Server, error) {
	var err error
	changed := func(name string) bool {
		return err == nil && flags.Changed(name)
	}

	if changed("port") {
		cfg.Port, err = flags.GetInt("port")
	}
	if changed("data") {
		cfg.DataFile, err = flags.GetString("data")
	}
	if changed("public") {
		cfg.PublicDir, err = flags.GetString("public")
	}
	if changed("log-level") {
		cfg.LogLevel, err = flags.GetString("log-level")
	}
	if changed("log-json") {
		cfg.LogJSON, err = flags.GetBool("log-json")
	}
	if err != nil {
		return config.Server{}, err
	}
	return cfg, nil
}
