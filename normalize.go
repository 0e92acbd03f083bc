// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/srb2modname

package modname

import (
	"fmt"
	"strings"
)

// NormalizeName prepares a mod name for the file name: trims surrounding
// space, removes apostrophes and turns spaces into underscores.
func NormalizeName(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.ReplaceAll(raw, "'", "")
	return strings.ReplaceAll(raw, " ", "_")
}

// NormalizeVersion prepares a version string the same way as NormalizeName.
func NormalizeVersion(raw string) string {
	return NormalizeName(raw)
}

// validateInput rejects runs that would produce an unusable file name.
func validateInput(target Target, kind ContainerKind, name, version string) error {
	if !target.Valid() {
		return fmt.Errorf("%w: unknown target %d", ErrInvalidInput, uint8(target))
	}

	if kind.Extension() == "" {
		return fmt.Errorf("%w: unknown container kind %q", ErrInvalidInput, kind)
	}

	if name == "" {
		return fmt.Errorf("%w: mod name is empty", ErrInvalidInput)
	}

	if version == "" {
		return fmt.Errorf("%w: version is empty", ErrInvalidInput)
	}

	return nil
}
