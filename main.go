package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"tint/internal/highlighter"
	"tint/internal/lang"
	"tint/internal/sniff"
)

type config struct {
	Path      string
	Language  string
	Theme     string
	MaxProbe  int
	Pager     bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.Language, "language", "", "format override (json, toml, yaml, markdown, log, shell, html, text)")
	flag.StringVar(&cfg.Theme, "theme", "", "color theme (default: $TINT_THEME or nord)")
	flag.IntVar(&cfg.MaxProbe, "max-probe", sniff.DefaultMaxProbe, "bytes of content examined by format detection")
	flag.BoolVar(&cfg.Pager, "pager", false, "view output in an interactive pager")
	listThemes := flag.Bool("list-themes", false, "list available themes and exit")
	listLanguages := flag.Bool("list-languages", false, "list detectable formats and exit")
	flag.Parse()

	if *listThemes {
		for _, name := range ListThemes() {
			fmt.Println(name)
		}
		return
	}
	if *listLanguages {
		for _, f := range lang.Formats() {
			fmt.Println(f)
		}
		return
	}

	if flag.NArg() > 0 {
		cfg.Path = flag.Arg(0)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "tint: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	data, title, err := readInput(cfg.Path)
	if err != nil {
		return err
	}

	format, err := resolveFormat(cfg, data)
	if err != nil {
		return err
	}

	if err := SetTheme(cfg.Theme); err != nil {
		return err
	}

	text := string(data)
	rendered := renderDocument(highlighter.Lines(text), highlighter.Highlight(format, text), buildStyles(appTheme))
	out := strings.Join(rendered, "\n")

	if cfg.Pager {
		return runPager(title, format, out)
	}

	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err = io.WriteString(os.Stdout, out)
	return err
}

func readInput(path string) ([]byte, string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return data, "(stdin)", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	return data, path, nil
}

func resolveFormat(cfg config, data []byte) (lang.Format, error) {
	if cfg.Language != "" {
		format, ok := lang.Parse(cfg.Language)
		if !ok {
			return lang.Unknown, fmt.Errorf("unknown format %q (see -list-languages)", cfg.Language)
		}
		return format, nil
	}

	format := highlighter.DetectFormatProbe(cfg.Path, data, cfg.MaxProbe)
	if format == lang.Unknown {
		return lang.Unknown, fmt.Errorf("cannot detect format (binary or empty input); pass -language")
	}
	return format, nil
}
