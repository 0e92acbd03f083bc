// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/srb2modname

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"sync"

	"github.com/blang/semver"
	"github.com/panjf2000/ants/v2"
	"github.com/spf13/cobra"

	modname "github.com/woozymasta/srb2modname"
)

// errSomeFailed is returned when at least one file could not be classified.
var errSomeFailed = errors.New("some files could not be classified")

// classifyFlags holds classify command flags.
type classifyFlags struct {
	target        string
	name          string
	version       string
	exclude       []string
	workers       int
	jsonOutput    bool
	strictUTF8    bool
	strictVersion bool
	verbose       bool
}

// fileReport is the outcome for one input file.
type fileReport struct {
	Path      string            `json:"path"`
	Error     string            `json:"error,omitempty"`
	ErrorKind modname.ErrorKind `json:"error_kind,omitempty"`
	modname.Result
}

func newClassifyCmd(cfg Config, logger *log.Logger) *cobra.Command {
	flags := classifyFlags{
		target:     cfg.Target,
		exclude:    cfg.Exclude,
		workers:    cfg.Workers,
		strictUTF8: cfg.StrictUTF8,
	}

	cmd := &cobra.Command{
		Use:   "classify <file>...",
		Short: "Print the standardized name of WAD/PK3 mods",
		Example: `  srb2modname classify --name "My Mod" --version 1.0 mymod.pk3
  srb2modname classify --target drrr --version 2 *.pk3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(cmd.OutOrStdout(), logger, flags, args)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&flags.target, "target", "t", flags.target, "target game: srb2, srb2k or drrr")
	fs.StringVarP(&flags.name, "name", "n", "", "mod name (default: file name without extension)")
	fs.StringVar(&flags.version, "version", "", "mod version (required)")
	fs.StringSliceVarP(&flags.exclude, "exclude", "x", flags.exclude, "PK3 path pattern to skip, gitignore syntax (repeatable)")
	fs.IntVarP(&flags.workers, "workers", "w", flags.workers, "files classified in parallel")
	fs.BoolVar(&flags.jsonOutput, "json", false, "print JSON reports")
	fs.BoolVar(&flags.strictUTF8, "strict-utf8", flags.strictUTF8, "fail on SOC text that is not valid UTF-8")
	fs.BoolVar(&flags.strictVersion, "strict-version", false, "require a semantic version like 1.2 or v1.2.3")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "log every scanned entry")
	_ = cmd.MarkFlagRequired("version")

	return cmd
}

// runClassify classifies every file and prints reports in argument order.
func runClassify(out io.Writer, logger *log.Logger, flags classifyFlags, paths []string) error {
	target, err := modname.ParseTarget(flags.target)
	if err != nil {
		return err
	}

	if flags.name != "" && len(paths) > 1 {
		return fmt.Errorf("--name applies to a single file, got %d files", len(paths))
	}

	version := modname.NormalizeVersion(flags.version)
	if flags.strictVersion {
		if _, err := semver.ParseTolerant(version); err != nil {
			return fmt.Errorf("%w: version %q: %w", modname.ErrInvalidInput, flags.version, err)
		}
	}

	opts := modname.Options{
		Exclude:    modname.ExcludeRules(flags.exclude...),
		StrictUTF8: flags.strictUTF8,
	}

	reports := classifyAll(logger, flags, paths, target, version, opts)

	if flags.jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return fmt.Errorf("encode reports: %w", err)
		}
	} else {
		printReports(out, reports)
	}

	for _, r := range reports {
		if r.Error != "" {
			return errSomeFailed
		}
	}

	return nil
}

// classifyAll runs one classification per path on a bounded worker pool.
func classifyAll(logger *log.Logger, flags classifyFlags, paths []string, target modname.Target, version string, opts modname.Options) []fileReport {
	reports := make([]fileReport, len(paths))

	workers := min(max(flags.workers, 1), len(paths))
	pool, err := ants.NewPool(workers)
	if err != nil {
		for i, path := range paths {
			reports[i] = failedReport(path, err)
		}
		return reports
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			reports[i] = classifyOne(logger, flags, path, target, version, opts)
		}

		if err := pool.Submit(task); err != nil {
			wg.Done()
			reports[i] = failedReport(path, err)
		}
	}
	wg.Wait()

	return reports
}

// classifyOne classifies a single file.
func classifyOne(logger *log.Logger, flags classifyFlags, path string, target modname.Target, version string, opts modname.Options) fileReport {
	name := flags.name
	if name == "" {
		base := filepath.Base(path)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	if flags.verbose {
		opts.OnEntry = func(e modname.EntryEvent) {
			logger.Printf("%s: %-8s %s (%d bytes)", path, e.Role, e.Path, e.Size)
		}
	}

	res, err := modname.ClassifyFileWithOptions(path, target, modname.NormalizeName(name), version, opts)
	if err != nil {
		logger.Printf("%s: %v", path, err)
		return failedReport(path, err)
	}

	return fileReport{Path: path, Result: res}
}

// failedReport builds a report for a failed file.
func failedReport(path string, err error) fileReport {
	return fileReport{
		Path:      path,
		Error:     err.Error(),
		ErrorKind: modname.KindOf(err),
	}
}

// printReports writes human readable reports.
func printReports(out io.Writer, reports []fileReport) {
	for i, r := range reports {
		if i > 0 {
			_, _ = fmt.Fprintln(out)
		}

		if len(reports) > 1 {
			_, _ = fmt.Fprintf(out, "%s:\n", r.Path)
		}

		if r.Error != "" {
			_, _ = fmt.Fprintf(out, "Cannot process file: %s\n", r.Error)
			continue
		}

		_, _ = fmt.Fprintln(out, r.FileName)
		for n, reason := range r.Reasons {
			_, _ = fmt.Fprintf(out, "  %d. %s\n", n+1, reason)
		}
	}
}
