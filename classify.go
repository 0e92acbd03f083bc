// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/srb2modname

package modname

import (
	"fmt"
	"os"
)

// ClassifyWAD classifies a WAD container held in memory.
// name and version must already be normalized.
func ClassifyWAD(data []byte, target Target, name, version string) (Result, error) {
	return ClassifyWADWithOptions(data, target, name, version, Options{})
}

// ClassifyWADWithOptions classifies a WAD container using explicit options.
func ClassifyWADWithOptions(data []byte, target Target, name, version string, opts Options) (Result, error) {
	opts.applyDefaults()

	if err := validateInput(target, KindWAD, name, version); err != nil {
		return Result{}, err
	}

	acc := NewAccumulator(target)
	if err := scanWAD(data, target, acc, &opts); err != nil {
		return Result{}, err
	}

	return assemble(acc, target, KindWAD, name, version), nil
}

// ClassifyPK3 classifies already enumerated PK3 entries.
// Entries are scanned in slice order, which should be the archive's stored order.
func ClassifyPK3(entries []ArchiveEntry, target Target, name, version string) (Result, error) {
	return ClassifyPK3WithOptions(entries, target, name, version, Options{})
}

// ClassifyPK3WithOptions classifies PK3 entries using explicit options.
func ClassifyPK3WithOptions(entries []ArchiveEntry, target Target, name, version string, opts Options) (Result, error) {
	opts.applyDefaults()

	if err := validateInput(target, KindPK3, name, version); err != nil {
		return Result{}, err
	}

	acc := NewAccumulator(target)
	if err := scanPK3(entries, target, acc, &opts); err != nil {
		return Result{}, err
	}

	return assemble(acc, target, KindPK3, name, version), nil
}

// Classify classifies raw container bytes of the given kind.
func Classify(data []byte, kind ContainerKind, target Target, name, version string) (Result, error) {
	return ClassifyWithOptions(data, kind, target, name, version, Options{})
}

// ClassifyWithOptions classifies raw container bytes using explicit options.
func ClassifyWithOptions(data []byte, kind ContainerKind, target Target, name, version string, opts Options) (Result, error) {
	switch kind {
	case KindWAD:
		return ClassifyWADWithOptions(data, target, name, version, opts)
	case KindPK3:
		if err := validateInput(target, kind, name, version); err != nil {
			return Result{}, err
		}

		entries, err := ReadArchiveEntriesBytes(data)
		if err != nil {
			return Result{}, err
		}

		return ClassifyPK3WithOptions(entries, target, name, version, opts)
	default:
		return Result{}, fmt.Errorf("%w: unknown container kind %q", ErrInvalidInput, kind)
	}
}

// ClassifyFile reads a container file and classifies it.
// The kind is taken from the extension, or sniffed from content.
func ClassifyFile(path string, target Target, name, version string) (Result, error) {
	return ClassifyFileWithOptions(path, target, name, version, Options{})
}

// ClassifyFileWithOptions reads a container file and classifies it using explicit options.
func ClassifyFileWithOptions(path string, target Target, name, version string, opts Options) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read container: %w", err)
	}

	kind, err := DetectKind(path, data)
	if err != nil {
		return Result{}, err
	}

	return ClassifyWithOptions(data, kind, target, name, version, opts)
}
