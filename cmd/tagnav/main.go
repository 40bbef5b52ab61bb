// Package main is the entry point for the tagnav tool.
//
// tagnav locates user-delimited tag regions (for example |<name>|) in
// text files. It can list regions, strip them while keeping their
// content, or open an interactive viewer for navigating them.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dshills/tagnav/internal/config"
	"github.com/dshills/tagnav/internal/dispatcher"
	"github.com/dshills/tagnav/internal/dispatcher/execctx"
	tagh "github.com/dshills/tagnav/internal/dispatcher/handlers/tag"
	"github.com/dshills/tagnav/internal/engine/buffer"
	"github.com/dshills/tagnav/internal/engine/cursor"
	"github.com/dshills/tagnav/internal/renderer"
	"github.com/dshills/tagnav/internal/renderer/backend"
	"github.com/dshills/tagnav/internal/tag"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
)

type options struct {
	configPath string
	open       string
	close      string
	wrap       bool
	wrapSet    bool
	command    string
	file       string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		usage()
		return 2
	}

	cfg, err := resolveConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	switch opts.command {
	case "list":
		err = runList(opts.file, cfg)
	case "strip":
		err = runStrip(opts.file, cfg)
	case "view":
		err = runView(opts.file, cfg)
	case "version":
		fmt.Println("tagnav", version)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", opts.command)
		usage()
		return 2
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string) (options, error) {
	var opts options

	fs := flag.NewFlagSet("tagnav", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "path to config file (TOML or YAML)")
	fs.StringVar(&opts.open, "open", "", "opening delimiter (overrides config)")
	fs.StringVar(&opts.close, "close", "", "closing delimiter (overrides config)")
	fs.BoolVar(&opts.wrap, "wrap", true, "wrap around at buffer boundaries")
	fs.Usage = usage

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "wrap" {
			opts.wrapSet = true
		}
	})

	rest := fs.Args()
	if len(rest) < 1 {
		return opts, fmt.Errorf("command required")
	}
	opts.command = rest[0]
	if len(rest) > 1 {
		opts.file = rest[1]
	}
	if opts.command != "version" && opts.file == "" {
		return opts, fmt.Errorf("file argument required for %s", opts.command)
	}
	return opts, nil
}

// resolveConfig layers settings: defaults, then the config file, then
// environment variables, then command-line flags.
func resolveConfig(opts options) (config.Config, error) {
	cfg := config.Default()

	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	cfg, err := config.ApplyEnv(cfg)
	if err != nil {
		return cfg, err
	}

	if opts.open != "" {
		cfg.Tag.Open = opts.open
	}
	if opts.close != "" {
		cfg.Tag.Close = opts.close
	}
	if opts.wrapSet {
		cfg.Tag.Wrap = opts.wrap
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadBuffer(path string) (*buffer.Buffer, error) {
	if path == "-" {
		b, err := buffer.NewBufferFromReader(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return b, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := buffer.NewBufferFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	b.SetPath(path)
	return b, nil
}

// runList prints every tag region with 1-based line:column bounds.
func runList(path string, cfg config.Config) error {
	b, err := loadBuffer(path)
	if err != nil {
		return err
	}

	snap := b.Snapshot()
	text := snap.Text()
	loc := tag.NewLocator(cfg.Tag.Open, cfg.Tag.Close, false)

	cursorOff := 0
	for loc.Locate(text, cursorOff, tag.Forward, true) {
		outer, _ := loc.Outer()
		content, _ := loc.Content()
		start := snap.OffsetToPoint(outer.Start)
		end := snap.OffsetToPoint(outer.End)
		fmt.Printf("%d:%d-%d:%d\t%s\n",
			start.Line+1, start.Column+1, end.Line+1, end.Column+1, content)
		cursorOff = outer.End
		loc.Reset()
	}
	return nil
}

// runStrip removes every tag, preserving content, and writes the
// result to stdout.
func runStrip(path string, cfg config.Config) error {
	b, err := loadBuffer(path)
	if err != nil {
		return err
	}

	stripped := tag.StripAll(b.Text(), cfg.Tag.Open, cfg.Tag.Close)
	_, err = io.WriteString(os.Stdout, stripped)
	return err
}

// runView opens the interactive viewer.
func runView(path string, cfg config.Config) error {
	b, err := loadBuffer(path)
	if err != nil {
		return err
	}

	ctx := execctx.New().
		WithEngine(b).
		WithCursors(cursor.NewManager())
	ctx.FilePath = b.Path()

	h := tagh.NewHandler(tag.NewLocator(cfg.Tag.Open, cfg.Tag.Close, cfg.Tag.Wrap))

	// Delimiter updates invalidate any cached match offsets.
	store := config.NewStore(cfg)
	store.Subscribe(func(c config.Change) {
		if c.DelimitersChanged() {
			h.Locator().SetDelimiters(c.New.Tag.Open, c.New.Tag.Close)
		}
		h.Locator().SetWrap(c.New.Tag.Wrap)
	})

	d := dispatcher.New()
	d.Register(h)

	term, err := backend.NewTerminal()
	if err != nil {
		return fmt.Errorf("creating terminal: %w", err)
	}

	return renderer.NewViewer(term, d, ctx, b, cfg.Tag.Open, cfg.Tag.Close).Run()
}

func usage() {
	fmt.Fprint(os.Stderr, `Usage: tagnav [flags] <command> <file>

Commands:
  list FILE    list tag regions (use - for stdin)
  strip FILE   remove tags, keeping content (use - for stdin)
  view FILE    interactive viewer (n/p navigate, i/o select, d remove, q quit)
  version      print version

Flags:
  -config PATH  config file (TOML or YAML)
  -open S       opening delimiter (default |<)
  -close S      closing delimiter (default >|)
  -wrap         wrap around at buffer boundaries (default true)
`)
}
