// Command datefmt compiles a date pattern and parses inputs with it.
//
//	datefmt -timezone America/Los_Angeles "yyyy-MM-dd HH:mm" "2023-04-05 17:24"
//
// With no input argument it reads one input per stdin line and reports a
// summary table, logging each failure with its error index. A TOML config
// file can name pattern aliases:
//
//	timezone = "UTC"
//	locale = "en-US"
//	[patterns]
//	iso = "yyyy-MM-dd'T'HH:mm:ss"
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"github.com/scylladb/termtables"
	"golang.org/x/text/language"

	"github.com/datetools/datefmt"
)

var (
	timezone   = ""
	locale     = "en-US"
	configPath = ""
)

type config struct {
	Timezone string            `toml:"timezone"`
	Locale   string            `toml:"locale"`
	Patterns map[string]string `toml:"patterns"`
}

func loadConfig(path string) (*config, error) {
	var cfg config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return &cfg, nil
}

// resolvePattern maps a pattern alias through the config, falling back to
// the argument itself.
func resolvePattern(cfg *config, arg string) string {
	if cfg != nil {
		if p, ok := cfg.Patterns[arg]; ok {
			return p
		}
	}
	return arg
}

func main() {
	flag.StringVar(&timezone, "timezone", "", "Timezone aka `America/Los_Angeles` used when the input carries no zone")
	flag.StringVar(&locale, "locale", "en-US", "BCP-47 locale tag for month/day names")
	flag.StringVar(&configPath, "config", "", "TOML file with pattern aliases")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if len(flag.Args()) == 0 {
		fmt.Println(`Must pass a pattern:   ./datefmt "yyyy-MM-dd" "2023-04-05"`)
		return
	}

	var cfg *config
	if configPath != "" {
		var err error
		cfg, err = loadConfig(configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("config")
		}
	}
	if timezone == "" {
		timezone = "UTC"
		if cfg != nil && cfg.Timezone != "" {
			timezone = cfg.Timezone
		}
	}
	if cfg != nil && cfg.Locale != "" && locale == "en-US" {
		locale = cfg.Locale
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", timezone).Msg("bad timezone")
	}
	tag := language.Make(locale)

	pattern := resolvePattern(cfg, flag.Args()[0])
	p, err := datefmt.Compile(pattern, loc, tag)
	if err != nil {
		log.Fatal().Err(err).Msg("bad pattern")
	}

	table := termtables.CreateTable()
	table.AddHeaders("Input", "Timezone", "Parsed as UTC", "Round-trip")

	if len(flag.Args()) > 1 {
		input := flag.Args()[1]
		ts, err := p.Parse(input)
		if err != nil {
			log.Fatal().Err(err).Msg("parse")
		}
		table.AddRow(input, timezone, fmt.Sprintf("%v", ts.In(time.UTC)), p.Format(ts))
		fmt.Println(table.Render())
		return
	}

	parsed, failed := 0, 0
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		input := scanner.Text()
		if input == "" {
			continue
		}
		ts, err := p.Parse(input)
		if err != nil {
			failed++
			if pe, ok := err.(*datefmt.ParseError); ok {
				log.Error().Int("index", pe.Index).Str("input", input).Msg("no match")
			} else {
				log.Error().Err(err).Str("input", input).Msg("parse")
			}
			continue
		}
		parsed++
		table.AddRow(input, timezone, fmt.Sprintf("%v", ts.In(time.UTC)), p.Format(ts))
	}
	if err := scanner.Err(); err != nil {
		log.Fatal().Err(err).Msg("stdin")
	}

	fmt.Println(table.Render())
	fmt.Printf("%d parsed, %d failed\n", parsed, failed)
}
