// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/srb2modname

package modname

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
)

// NormalizePath converts an archive entry path to normalized slash-separated form
// for rule matching. It trims spaces, accepts both "/" and "\", and cleans "." segments.
func NormalizePath(raw string) string {
	raw = normalizePathForMatching(raw)
	raw = strings.TrimPrefix(raw, "/")
	raw = path.Clean("/" + raw)
	raw = strings.TrimPrefix(raw, "/")
	if raw == "." {
		return ""
	}

	return strings.TrimSuffix(raw, "/")
}

// normalizePathForMatching normalizes user/input paths for matcher use.
func normalizePathForMatching(path string) string {
	path = strings.TrimSpace(path)
	path = strings.ReplaceAll(path, `\`, `/`)
	path = strings.TrimPrefix(path, "./")
	return path
}

// KindFromPath returns the container kind for a file name by its extension.
// ".dll" is the hidden WAD that SRB2 Demo 4 shipped.
func KindFromPath(name string) (ContainerKind, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".pk3":
		return KindPK3, nil
	case ".wad", ".dll":
		return KindWAD, nil
	default:
		return "", fmt.Errorf("%w: %q is not a pk3 or wad", ErrInvalidInput, name)
	}
}

// DetectKind resolves the container kind from file name, falling back to
// content sniffing when the extension is not recognized.
func DetectKind(name string, head []byte) (ContainerKind, error) {
	kind, err := KindFromPath(name)
	if err == nil {
		return kind, nil
	}

	if filetype.Is(head, "zip") {
		return KindPK3, nil
	}

	if len(head) >= 4 {
		switch decodeASCII(head[:4]) {
		case TagPWAD, TagIWAD, TagSDLL, TagZWAD:
			return KindWAD, nil
		}
	}

	return "", err
}
