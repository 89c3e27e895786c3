// Command passforge prints random passwords with a strength badge.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/pterm/pterm"
)

var errNegative = errors.New("must not be negative")

type cliConfig struct {
	Length  int
	Options crypto.Options
	Count   int
	Seed    uint64

	Check    string
	CheckSet bool
}

type result struct {
	Password string
	Strength crypto.Strength
}

var badgeColors = map[string]pterm.RGB{
	"red":    pterm.NewRGB(220, 53, 69),
	"orange": pterm.NewRGB(253, 126, 20),
	"yellow": pterm.NewRGB(255, 193, 7),
	"green":  pterm.NewRGB(40, 167, 69),
}

func parseFlags(args []string, output io.Writer) (cliConfig, error) {
	var cfg cliConfig

	fs := flag.NewFlagSet("passforge", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "USAGE: passforge [OPTION]...\n")
		fs.PrintDefaults()
	}

	fs.IntVar(&cfg.Length, "length", 24, "Password length")
	fs.BoolVar(&cfg.Options.Lowercase, "lower", true, "Include lowercase letters (a-z)")
	fs.BoolVar(&cfg.Options.Uppercase, "upper", true, "Include uppercase letters (A-Z)")
	fs.BoolVar(&cfg.Options.Numbers, "numbers", true, "Include digits (0-9)")
	fs.BoolVar(&cfg.Options.Symbols, "symbols", true, "Include symbols")
	fs.IntVar(&cfg.Count, "count", 1, "Number of passwords to generate")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "Seed for reproducible output, 0 means unseeded")
	fs.StringVar(&cfg.Check, "check", "", "Rate the given password instead of generating one")

	if err := fs.Parse(args); err != nil {
		return cliConfig{}, err
	}
	if fs.NArg() > 0 {
		return cliConfig{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "check" {
			cfg.CheckSet = true
		}
	})

	if cfg.Length < 0 {
		return cliConfig{}, fmt.Errorf("-length %w", errNegative)
	}
	if cfg.Count < 0 {
		return cliConfig{}, fmt.Errorf("-count %w", errNegative)
	}

	return cfg, nil
}

func (cfg cliConfig) source() crypto.RandomSource {
	if cfg.Seed != 0 {
		return crypto.NewSeededSource(cfg.Seed)
	}
	return crypto.DefaultSource()
}

func generate(cfg cliConfig) []result {
	src := cfg.source()

	results := make([]result, cfg.Count)
	for i := range results {
		password := crypto.Generate(cfg.Length, cfg.Options, src)
		results[i] = result{Password: password, Strength: crypto.Classify(password)}
	}
	return results
}

func badge(s crypto.Strength) string {
	label := "[" + s.String() + "]"
	if c, ok := badgeColors[s.Color()]; ok {
		return c.Sprint(label)
	}
	return label
}

func printResults(results []result) {
	for _, r := range results {
		if r.Password == "" {
			pterm.Warning.Println("no character classes enabled, password is empty")
			continue
		}
		pterm.Printfln("%s  %s", r.Password, badge(r.Strength))
	}
}

func printAnalysis(a crypto.Analysis) error {
	yesNo := func(b bool) string {
		if b {
			return "yes"
		}
		return "no"
	}

	data := pterm.TableData{
		{"Length", "Lowercase", "Uppercase", "Numbers", "Symbols", "Types", "Strength"},
		{
			strconv.Itoa(a.Length),
			yesNo(a.Lowercase),
			yesNo(a.Uppercase),
			yesNo(a.Numbers),
			yesNo(a.Symbols),
			strconv.Itoa(a.TypeCount),
			badge(a.Strength),
		},
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		pterm.Error.Printf("%s\n", err)
		os.Exit(2)
	}

	if cfg.CheckSet {
		if err := printAnalysis(crypto.Analyze(cfg.Check)); err != nil {
			pterm.Error.Printf("failed to render analysis: %s\n", err)
			os.Exit(1)
		}
		return
	}

	printResults(generate(cfg))
}
