// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/srb2modname

package modname

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/zip"
)

// maxEntryPrealloc bounds buffer preallocation from declared entry sizes.
const maxEntryPrealloc = 16 * 1024 * 1024

// ReadArchiveEntries reads every PK3 entry, including directories, in the
// order stored in the zip central directory. A repeated path appears once,
// at its first position with the content of its last copy.
func ReadArchiveEntries(ra io.ReaderAt, size int64) ([]ArchiveEntry, error) {
	if ra == nil {
		return nil, fmt.Errorf("%w: reader is nil", ErrInvalidInput)
	}

	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("%w: open PK3: %w", ErrInvalidContainer, err)
	}

	entries := make([]ArchiveEntry, 0, len(zr.File))
	for _, f := range zr.File {
		data, err := readZipFile(f)
		if err != nil {
			return nil, err
		}

		entries = append(entries, ArchiveEntry{Path: f.Name, Data: data})
	}

	return collapseEntries(entries), nil
}

// collapseEntries merges entries sharing a path: the first copy keeps its
// position and the last copy provides the content.
func collapseEntries(entries []ArchiveEntry) []ArchiveEntry {
	index := make(map[string]int, len(entries))
	out := make([]ArchiveEntry, 0, len(entries))
	for _, entry := range entries {
		if i, ok := index[entry.Path]; ok {
			out[i].Data = entry.Data
			continue
		}

		index[entry.Path] = len(out)
		out = append(out, entry)
	}

	return out
}

// ReadArchiveEntriesBytes reads PK3 entries from an in-memory archive.
func ReadArchiveEntriesBytes(data []byte) ([]ArchiveEntry, error) {
	return ReadArchiveEntries(bytes.NewReader(data), int64(len(data)))
}

// readZipFile reads full uncompressed content of one zip entry.
func readZipFile(f *zip.File) ([]byte, error) {
	if f.FileInfo().IsDir() {
		return nil, nil
	}

	size, err := checkedUint64ToInt(f.UncompressedSize64)
	if err != nil {
		return nil, fmt.Errorf("entry %s: %w", f.Name, err)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: open entry %s: %w", ErrInvalidContainer, f.Name, err)
	}
	defer func() { _ = rc.Close() }()

	buf := bytes.NewBuffer(make([]byte, 0, min(size, maxEntryPrealloc)))
	if _, err := io.Copy(buf, rc); err != nil {
		return nil, fmt.Errorf("%w: read entry %s: %w", ErrInvalidContainer, f.Name, err)
	}

	return buf.Bytes(), nil
}

// checkedUint64ToInt converts uint64 to int with platform-safe overflow check.
func checkedUint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("%w: size %d overflows int", ErrInvalidContainer, v)
	}

	return int(v), nil
}
