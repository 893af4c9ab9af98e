package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/rubiojr/typofind/dict"
	"github.com/rubiojr/typofind/scan"
	"github.com/rubiojr/typofind/tokenize"
)

// findingTotal accumulates the number of findings printed by the scan
// action. The process exit status equals this count, so callers can gate CI
// jobs on a clean scan.
var findingTotal int

// Execute runs the typofind CLI with the given version string.
func Execute(version string) {
	root := &cli.Command{
		Name:                   "typofind",
		Usage:                  "Scan source files for likely typos in strings, comments and identifiers",
		Version:                version,
		UseShortOptionHandling: true,
		ArgsUsage:              "<file|directory>...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dict",
				Aliases: []string{"d"},
				Usage:   "Dictionary file (typo->correction per line); defaults to the built-in dictionary",
			},
			&cli.StringFlag{
				Name:    "ignore",
				Aliases: []string{"i"},
				Usage:   "Ignore-list file, one word per line",
			},
			&cli.StringSliceFlag{
				Name:    "ext",
				Aliases: []string{"e"},
				Usage:   "File extensions scanned during directory walks (empty value disables filtering)",
				Value:   []string{".php"},
			},
			&cli.BoolFlag{
				Name:    "plaintext",
				Aliases: []string{"p"},
				Usage:   "Treat inputs as plain text instead of tokenizing them as source code",
			},
			&cli.BoolFlag{
				Name:    "context",
				Aliases: []string{"c"},
				Usage:   "Print the trimmed source line under each finding",
			},
			&cli.BoolFlag{
				Name:    "no-color",
				Aliases: []string{"C"},
				Usage:   "Disable ANSI color output",
			},
		},
		Action: scanAction,
		Commands: []*cli.Command{
			{
				Name:      "suggest",
				Usage:     "Suggest dictionary corrections for one or more words",
				ArgsUsage: "<word>...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "dict",
						Aliases: []string{"d"},
						Usage:   "Dictionary file to train suggestions from",
					},
				},
				Action: suggestAction,
			},
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if findingTotal > 0 {
		os.Exit(findingTotal)
	}
}

// loadDictionary resolves the dictionary source: the --dict flag wins, then
// the TYPOFIND_DICT environment variable, then the embedded dictionary.
// Failure here is fatal; there is nothing to scan against without one.
func loadDictionary(cmd *cli.Command) (*dict.Dictionary, error) {
	path := cmd.String("dict")
	if path == "" {
		path = os.Getenv("TYPOFIND_DICT")
	}
	if path != "" {
		return dict.Load(path)
	}
	return dict.Default()
}

func scanAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: typofind [options] <file|directory>...")
	}
	d, err := loadDictionary(cmd)
	if err != nil {
		return err
	}

	var ignore *dict.IgnoreList
	if path := cmd.String("ignore"); path != "" {
		if ignore, err = dict.LoadIgnore(path); err != nil {
			return err
		}
	}

	opts := printOptions{
		color:       useColor(cmd),
		withContext: cmd.Bool("context"),
	}

	sc := scan.New(d)
	files := collectFiles(cmd.Args().Slice(), extFilter(cmd))
	for _, path := range files {
		findingTotal += scanOne(sc, path, ignore, cmd.Bool("plaintext"), opts)
	}
	return nil
}

// extFilter normalizes the --ext flag. A single empty value disables the
// extension filter entirely.
func extFilter(cmd *cli.Command) []string {
	var exts []string
	for _, e := range cmd.StringSlice("ext") {
		if e = strings.TrimSpace(e); e != "" {
			exts = append(exts, e)
		}
	}
	return exts
}

// useColor enables highlighting only for interactive runs, honoring
// NO_COLOR and the --no-color flag.
func useColor(cmd *cli.Command) bool {
	if cmd.Bool("no-color") || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

type printOptions struct {
	color       bool
	withContext bool
}

// scanOne scans a single file and prints its findings. Read failures and
// binary files are reported to stderr and skipped without affecting the
// rest of the run. Returns the number of findings printed.
func scanOne(sc *scan.Scanner, path string, ignore *dict.IgnoreList, plaintext bool, opts printOptions) int {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "typofind: cannot read %s: %v\n", path, err)
		return 0
	}
	if looksBinary(data) {
		fmt.Fprintf(os.Stderr, "typofind: skipping binary file %s\n", path)
		return 0
	}
	text := string(data)

	var findings []scan.Finding
	if plaintext {
		findings = sc.ScanText(text)
	} else {
		findings = sc.ScanSpans(tokenize.Tokenize(text))
	}

	var lines []string
	if opts.withContext {
		lines = strings.Split(text, "\n")
	}

	count := 0
	for _, f := range findings {
		if ignore.Contains(f.Word) {
			continue
		}
		word := f.Word
		if opts.color {
			word = "\033[31m" + word + "\033[0m"
		}
		fmt.Printf("%s:%d: Saw a possible typo \"%s\" in %s (%s)\n", path, f.Line, word, f.Kind, f.Message())
		if opts.withContext && f.Line >= 1 && f.Line <= len(lines) {
			fmt.Printf("    %s\n", strings.TrimSpace(lines[f.Line-1]))
		}
		count++
	}
	return count
}

func suggestAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: typofind suggest <word>...")
	}
	d, err := loadDictionary(cmd)
	if err != nil {
		return err
	}
	suggester := dict.NewSuggester(d)
	for _, word := range cmd.Args().Slice() {
		sugs := suggester.Suggest(word)
		if len(sugs) == 0 {
			fmt.Printf("%s: no suggestions\n", word)
			continue
		}
		fmt.Printf("%s: %s\n", word, strings.Join(sugs, ", "))
	}
	return nil
}
