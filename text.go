// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/srb2modname

package modname

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// decodeSOCText decodes embedded SOC bytes as UTF-8, stripping a leading BOM.
// Invalid sequences become U+FFFD unless strict is set.
func decodeSOCText(name string, b []byte, strict bool) (string, error) {
	if strict && !utf8.Valid(b) {
		return "", fmt.Errorf("%w: %s is not valid UTF-8", ErrMalformedConfig, name)
	}

	out, err := unicode.UTF8BOM.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("%w: decode %s: %w", ErrMalformedConfig, name, err)
	}

	return string(out), nil
}
