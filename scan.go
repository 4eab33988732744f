package fileformat

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/gobwas/glob"
)

// ScanResult is one scanned file: either its report or the error that
// prevented one. A failed file never aborts the walk.
type ScanResult struct {
	Path   string
	Report *Report
	Err    error
}

// Summary aggregates a completed scan.
type Summary struct {
	// Files is the number of regular files visited.
	Files int

	// Identified counts files classified as something other than
	// arbitrary binary data.
	Identified int

	// Errors counts files that could not be read.
	Errors int

	// Bytes is the total size of successfully inspected files.
	Bytes int64

	// ByKind and ByFormat count identified files per family and format.
	ByKind   map[Kind]int
	ByFormat map[FileFormat]int
}

// Scanner walks a directory tree and classifies every regular file it
// finds. Include/exclude globs are compiled once at construction; a bad
// pattern fails NewScanner with ErrInvalidPattern rather than surfacing
// mid-walk.
//
// A Scanner is safe for concurrent use: Scan keeps all per-run state on
// the stack.
type Scanner struct {
	opts    Options
	include []glob.Glob
	exclude []glob.Glob
}

// NewScanner creates a Scanner from the given options.
func NewScanner(opts ...Option) (*Scanner, error) {
	o := newOptions(opts)

	include, err := compileGlobs(o.Include)
	if err != nil {
		return nil, err
	}
	exclude, err := compileGlobs(o.Exclude)
	if err != nil {
		return nil, err
	}

	return &Scanner{opts: o, include: include, exclude: exclude}, nil
}

// compileGlobs validates and compiles glob patterns up front.
func compileGlobs(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, p)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

// Scan walks root and returns one result per selected regular file, in
// walk order. Files are classified by a bounded worker pool; per-file
// read errors are carried inline in the results.
func (s *Scanner) Scan(root string) ([]ScanResult, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, wrapPathError("scan", root, err)
	}
	if !info.IsDir() {
		return nil, &PathError{Op: "scan", Path: root, Err: ErrNotDir}
	}

	paths, failed := s.collect(root)

	results := make([]ScanResult, len(paths))
	workers := s.opts.Concurrency
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i] = s.scanFile(path)
		}(i, path)
	}
	wg.Wait()

	return append(results, failed...), nil
}

// collect walks the tree and gathers the paths to classify. Walk failures
// come back as ready-made error results so the caller still sees them.
func (s *Scanner) collect(root string) (paths []string, failed []ScanResult) {
	visited := map[string]bool{}

	var walk func(dir string, depth int)
	walk = func(dir string, depth int) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			failed = append(failed, ScanResult{Path: dir, Err: wrapPathError("scan", dir, err)})
			return
		}
		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			typ := entry.Type()

			if typ&fs.ModeSymlink != 0 {
				if !s.opts.FollowSymlinks {
					continue
				}
				target, err := os.Stat(path)
				if err != nil {
					failed = append(failed, ScanResult{Path: path, Err: wrapPathError("scan", path, err)})
					continue
				}
				if target.IsDir() {
					resolved, err := filepath.EvalSymlinks(path)
					if err != nil || visited[resolved] {
						continue
					}
					visited[resolved] = true
					if s.opts.MaxDepth == 0 || depth+1 < s.opts.MaxDepth {
						walk(path, depth+1)
					}
					continue
				}
				if s.selects(root, path) {
					paths = append(paths, path)
				}
				continue
			}

			if entry.IsDir() {
				if s.opts.MaxDepth == 0 || depth+1 < s.opts.MaxDepth {
					walk(path, depth+1)
				}
				continue
			}
			if !typ.IsRegular() {
				continue
			}
			if s.selects(root, path) {
				paths = append(paths, path)
			}
		}
	}

	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		visited[resolved] = true
	}
	walk(root, 0)
	return paths, failed
}

// selects applies the include/exclude globs to a path. Patterns are
// matched against both the slash-separated path relative to the scan root
// and the bare file name, so "*.png" selects nested files without needing
// a "**/" prefix.
func (s *Scanner) selects(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	base := rel
	if idx := strings.LastIndex(rel, "/"); idx != -1 {
		base = rel[idx+1:]
	}

	for _, g := range s.exclude {
		if g.Match(rel) || g.Match(base) {
			return false
		}
	}
	if len(s.include) == 0 {
		return true
	}
	for _, g := range s.include {
		if g.Match(rel) || g.Match(base) {
			return true
		}
	}
	return false
}

// scanFile inspects a single file, going through the report cache when
// one is configured.
func (s *Scanner) scanFile(path string) ScanResult {
	var key string
	if s.opts.Cache != nil {
		if info, err := os.Stat(path); err == nil {
			key = reportCacheKey(path, info.Size(), info.ModTime())
			if cached, ok := s.opts.Cache.Get(key); ok {
				if report, ok := cached.(*Report); ok {
					return ScanResult{Path: path, Report: report}
				}
			}
		}
	}

	report, err := Inspect(path, WithChecksums(s.opts.Checksums...))
	if err != nil {
		return ScanResult{Path: path, Err: err}
	}
	if key != "" {
		s.opts.Cache.Set(key, report, s.opts.CacheTTL)
	}
	return ScanResult{Path: path, Report: report}
}

// Summarize aggregates scan results into counts per kind and format.
func Summarize(results []ScanResult) Summary {
	summary := Summary{
		ByKind:   make(map[Kind]int),
		ByFormat: make(map[FileFormat]int),
	}
	for _, result := range results {
		summary.Files++
		if result.Err != nil {
			summary.Errors++
			continue
		}
		summary.Bytes += result.Report.Size
		format := result.Report.Format
		if format != ArbitraryBinaryData {
			summary.Identified++
		}
		summary.ByKind[format.Kind()]++
		summary.ByFormat[format]++
	}
	return summary
}
