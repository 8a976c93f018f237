// Command podparse parses a podcast RSS feed from a file, stdin or a URL and prints it as JSON.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/lysyi3m/podcast-rss/app/feed"
	"github.com/lysyi3m/podcast-rss/app/logging"
	"github.com/lysyi3m/podcast-rss/app/parser"
)

const (
	exitOK         = 0
	exitError      = 1
	exitIncomplete = 2
)

type options struct {
	URL         string        `long:"url" description:"Fetch the feed from this URL instead of reading FILE"`
	UserAgent   string        `long:"user-agent" env:"USER_AGENT" default:"Podcast RSS/1.0" description:"User agent string for HTTP requests"`
	Timeout     time.Duration `long:"timeout" default:"30s" description:"Timeout for fetching --url"`
	MaxEpisodes int           `long:"max-episodes" description:"Print at most this many episodes (0 prints all)"`
	Compact     bool          `long:"compact" description:"Print JSON without indentation"`
	Debug       bool          `long:"debug" env:"DEBUG" description:"Enable debug logging"`

	Args struct {
		File string `positional-arg-name:"FILE" description:"Feed file to parse, - or empty for stdin"`
	} `positional-args:"yes"`
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	p := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := p.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, err)
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitError
	}

	slog.SetDefault(slog.New(logging.NewHandler(stderr, opts.Debug)))

	data, err := read(ctx, opts, stdin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}

	result, ok, err := parser.NewParser().Run(data)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	if !ok {
		fmt.Fprintln(stderr, parser.ErrIncompletePodcast)
		return exitIncomplete
	}

	if opts.MaxEpisodes > 0 && len(result.Episodes) > opts.MaxEpisodes {
		result.Episodes = result.Episodes[:opts.MaxEpisodes]
	}

	encoder := json.NewEncoder(stdout)
	if !opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(result); err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}

	return exitOK
}

func read(ctx context.Context, opts options, stdin io.Reader) ([]byte, error) {
	switch {
	case opts.URL != "" && opts.Args.File != "":
		return nil, errors.New("either --url or FILE can be given, not both")
	case opts.URL != "":
		return feed.NewFetcher(nil, opts.UserAgent).Fetch(ctx, opts.URL, opts.Timeout)
	case opts.Args.File == "" || opts.Args.File == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	default:
		data, err := os.ReadFile(opts.Args.File)
		if err != nil {
			return nil, fmt.Errorf("failed to read feed file: %w", err)
		}
		return data, nil
	}
}
