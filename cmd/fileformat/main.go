package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/gobeaver/fileformat"
)

const version = "fileformat-0.1.0"

// Command-line flags
var (
	brief       = flag.Bool("brief", false, "print only media type and extension")
	jsonOut     = flag.Bool("json", false, "print reports as JSON")
	checksum    = flag.Bool("checksum", false, "fingerprint content (algorithm from BEAVER_FILEFORMAT_CHECKSUM_ALGORITHM, default xxhash)")
	scan        = flag.Bool("scan", false, "treat arguments as directories and scan them recursively")
	watch       = flag.Bool("watch", false, "watch the given directory and report changes until interrupted")
	include     = flag.String("include", "", "comma-separated include glob patterns")
	exclude     = flag.String("exclude", "", "comma-separated exclude glob patterns")
	depth       = flag.Int("depth", 0, "maximum scan depth (0 = unlimited)")
	versionFlag = flag.Bool("version", false, "output version information")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *versionFlag {
		fmt.Println(version)
		return
	}
	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	cfg, err := fileformat.GetConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fileformat: %v\n", err)
		os.Exit(1)
	}

	formatter, err := fileformat.NewFormatter(outputName(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "fileformat: %v\n", err)
		os.Exit(2)
	}

	opts := buildOptions(cfg)

	var failed bool
	switch {
	case *watch:
		failed = runWatch(flag.Arg(0), formatter, opts)
	case *scan:
		for _, root := range flag.Args() {
			if !runScan(root, formatter, opts) {
				failed = true
			}
		}
	default:
		for _, path := range flag.Args() {
			if !runFile(path, formatter, opts) {
				failed = true
			}
		}
	}
	if failed {
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: fileformat [flags] FILE...\n")
	fmt.Fprintf(os.Stderr, "       fileformat -scan [flags] DIR...\n")
	fmt.Fprintf(os.Stderr, "       fileformat -watch [flags] DIR\n\n")
	flag.PrintDefaults()
}

// outputName picks the report format: the flag wins over the environment.
func outputName(cfg *fileformat.Config) string {
	if *jsonOut {
		return "json"
	}
	return cfg.OutputFormat
}

// buildOptions merges flags over environment defaults.
func buildOptions(cfg *fileformat.Config) []fileformat.Option {
	var opts []fileformat.Option

	if patterns := splitPatterns(*include, cfg.Include); len(patterns) > 0 {
		opts = append(opts, fileformat.WithInclude(patterns...))
	}
	if patterns := splitPatterns(*exclude, cfg.Exclude); len(patterns) > 0 {
		opts = append(opts, fileformat.WithExclude(patterns...))
	}
	if *depth > 0 {
		opts = append(opts, fileformat.WithMaxDepth(*depth))
	} else if cfg.MaxDepth > 0 {
		opts = append(opts, fileformat.WithMaxDepth(cfg.MaxDepth))
	}
	if cfg.FollowSymlinks {
		opts = append(opts, fileformat.WithFollowSymlinks(true))
	}
	if cfg.Concurrency > 0 {
		opts = append(opts, fileformat.WithConcurrency(cfg.Concurrency))
	}
	if cfg.CacheEnabled {
		opts = append(opts,
			fileformat.WithCache(fileformat.NewMemoryCache()),
			fileformat.WithCacheTTL(time.Duration(cfg.CacheTTLSeconds)*time.Second),
		)
	}
	if cfg.PollIntervalSeconds > 0 {
		opts = append(opts, fileformat.WithPollInterval(time.Duration(cfg.PollIntervalSeconds)*time.Second))
	}
	if *checksum {
		algo := fileformat.ChecksumAlgorithm(cfg.ChecksumAlgorithm)
		if algo == "" {
			algo = fileformat.DefaultChecksumAlgorithm
		}
		opts = append(opts, fileformat.WithChecksum(algo))
	}
	return opts
}

// splitPatterns merges a flag value over an environment default, both
// comma-separated.
func splitPatterns(flagValue, envValue string) []string {
	value := flagValue
	if value == "" {
		value = envValue
	}
	if value == "" {
		return nil
	}
	var patterns []string
	for _, p := range strings.Split(value, ",") {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

func runFile(path string, formatter fileformat.Formatter, opts []fileformat.Option) bool {
	if *brief {
		format, err := fileformat.FromFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fileformat: %v\n", err)
			return false
		}
		fmt.Printf("%s: %s %s\n", path, format.MediaType(), format.Extension())
		return true
	}

	report, err := fileformat.Inspect(path, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fileformat: %v\n", err)
		return false
	}
	if err := formatter.Format(os.Stdout, report); err != nil {
		fmt.Fprintf(os.Stderr, "fileformat: %v\n", err)
		return false
	}
	return true
}

func runScan(root string, formatter fileformat.Formatter, opts []fileformat.Option) bool {
	scanner, err := fileformat.NewScanner(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fileformat: %v\n", err)
		return false
	}
	results, err := scanner.Scan(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fileformat: %v\n", err)
		return false
	}

	ok := true
	for _, result := range results {
		if result.Err != nil {
			fmt.Fprintf(os.Stderr, "fileformat: %v\n", result.Err)
			ok = false
			continue
		}
		if *brief {
			format := result.Report.Format
			fmt.Printf("%s: %s %s\n", result.Path, format.MediaType(), format.Extension())
			continue
		}
		if err := formatter.Format(os.Stdout, result.Report); err != nil {
			fmt.Fprintf(os.Stderr, "fileformat: %v\n", err)
			ok = false
		}
	}

	summary := fileformat.Summarize(results)
	fmt.Fprintf(os.Stderr, "%d files, %d identified, %d errors, %d bytes\n",
		summary.Files, summary.Identified, summary.Errors, summary.Bytes)
	return ok
}

func runWatch(root string, formatter fileformat.Formatter, opts []fileformat.Option) bool {
	watcher, err := fileformat.NewWatcher(root, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fileformat: %v\n", err)
		return false
	}
	defer watcher.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return true
		case event, ok := <-watcher.Events():
			if !ok {
				return true
			}
			if event.Err != nil {
				fmt.Fprintf(os.Stderr, "fileformat: %v\n", event.Err)
				continue
			}
			if event.Report == nil {
				fmt.Printf("%s %s\n", event.Op, event.Path)
				continue
			}
			fmt.Printf("%s ", event.Op)
			if err := formatter.Format(os.Stdout, event.Report); err != nil {
				fmt.Fprintf(os.Stderr, "fileformat: %v\n", err)
			}
		}
	}
}
