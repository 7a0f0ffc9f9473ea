// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config loads the chameneos command configuration from the
// environment, command-line flags and an optional YAML games file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"code.hybscloud.com/rendezvous"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultMeetings is the meeting count used when none is configured.
const DefaultMeetings = 6000000

// Game is one group of creatures, listed by initial color.
type Game struct {
	Name   string
	Colors []rendezvous.Color
}

// Config is the resolved command configuration.
type Config struct {
	Meetings uint64
	Games    []Game
	JSON     bool
	Affinity bool
	Journal  bool
	Timeout  time.Duration
}

type envConfig struct {
	Meetings  uint64        `env:"CHAMENEOS_MEETINGS" envDefault:"6000000"`
	GamesFile string        `env:"CHAMENEOS_GAMES_FILE"`
	JSON      bool          `env:"CHAMENEOS_JSON"`
	Affinity  bool          `env:"CHAMENEOS_AFFINITY" envDefault:"true"`
	Journal   bool          `env:"CHAMENEOS_JOURNAL"`
	Timeout   time.Duration `env:"CHAMENEOS_TIMEOUT" envDefault:"0s"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ParseConfig resolves the configuration: environment first, then flags,
// then an optional positional meeting count.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var envCfg envConfig
	if err := ParseEnv(&envCfg); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Meetings: envCfg.Meetings,
		JSON:     envCfg.JSON,
		Affinity: envCfg.Affinity,
		Journal:  envCfg.Journal,
		Timeout:  envCfg.Timeout,
	}
	gamesFile := envCfg.GamesFile

	fs.Uint64Var(&cfg.Meetings, "n", cfg.Meetings, "meetings per game (default: CHAMENEOS_MEETINGS or 6000000)")
	fs.StringVar(&gamesFile, "games", gamesFile, "YAML file listing games (default: CHAMENEOS_GAMES_FILE or the built-in games)")
	fs.BoolVar(&cfg.JSON, "json", cfg.JSON, "output a JSON report")
	fs.BoolVar(&cfg.Affinity, "affinity", cfg.Affinity, "pin each game's creatures to its own CPU slot")
	fs.BoolVar(&cfg.Journal, "journal", cfg.Journal, "record meetings and report color pair counts")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "overall timeout (0 = none)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if fs.NArg() > 1 {
		return Config{}, errors.New("at most one positional argument (meetings) is accepted")
	}
	if fs.NArg() == 1 {
		n, err := strconv.ParseUint(fs.Arg(0), 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("parse meetings %q: %w", fs.Arg(0), err)
		}
		cfg.Meetings = n
	}

	if gamesFile == "" {
		cfg.Games = DefaultGames()
		return cfg, nil
	}
	games, err := LoadGames(gamesFile)
	if err != nil {
		return Config{}, err
	}
	cfg.Games = games
	return cfg, nil
}

// DefaultGames returns the two classic games: three creatures of distinct
// colors, and ten creatures of mixed colors.
func DefaultGames() []Game {
	b, r, y := rendezvous.Blue, rendezvous.Red, rendezvous.Yellow
	return []Game{
		{Name: "three", Colors: []rendezvous.Color{b, r, y}},
		{Name: "ten", Colors: []rendezvous.Color{b, r, y, r, y, b, r, y, r, b}},
	}
}

type gamesFile struct {
	Games []struct {
		Name   string   `yaml:"name"`
		Colors []string `yaml:"colors"`
	} `yaml:"games"`
}

// LoadGames reads games from a YAML file of the form:
//
//	games:
//	  - name: three
//	    colors: [blue, red, yellow]
func LoadGames(path string) ([]Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read games file: %w", err)
	}
	return ParseGames(data)
}

// ParseGames decodes YAML games, validating every color name.
func ParseGames(data []byte) ([]Game, error) {
	var f gamesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode games: %w", err)
	}
	if len(f.Games) == 0 {
		return nil, errors.New("decode games: no games listed")
	}
	games := make([]Game, len(f.Games))
	for i, g := range f.Games {
		games[i].Name = g.Name
		if games[i].Name == "" {
			games[i].Name = strconv.Itoa(i + 1)
		}
		games[i].Colors = make([]rendezvous.Color, len(g.Colors))
		for j, name := range g.Colors {
			c, err := rendezvous.ParseColor(name)
			if err != nil {
				return nil, fmt.Errorf("game %s: %w", games[i].Name, err)
			}
			games[i].Colors[j] = c
		}
	}
	return games, nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
