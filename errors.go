// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/srb2modname

package modname

import "errors"

// Sentinel errors for classification. Use errors.Is in callers.
var (
	// ErrInvalidContainer means the data has a bad or missing WAD tag or is not a readable PK3.
	ErrInvalidContainer = errors.New("not a valid WAD or PK3 container")
	// ErrUnsupportedVariant means the container is recognized but not handled (ZWAD).
	ErrUnsupportedVariant = errors.New("unsupported container variant")
	// ErrTruncatedData means a read went past the end of the buffer.
	ErrTruncatedData = errors.New("read beyond end of data")
	// ErrMalformedConfig means an embedded SOC or MAINCFG text could not be decoded.
	ErrMalformedConfig = errors.New("malformed SOC text")
	// ErrInvalidInput means name, version, target, kind or rules are unusable.
	ErrInvalidInput = errors.New("invalid input")
)

// ErrorKind is a stable machine-readable name for a classification failure.
type ErrorKind string

// Error kinds reported by KindOf.
const (
	ErrorKindNone               ErrorKind = ""
	ErrorKindInvalidContainer   ErrorKind = "invalid_container"
	ErrorKindUnsupportedVariant ErrorKind = "unsupported_variant"
	ErrorKindTruncatedData      ErrorKind = "truncated_data"
	ErrorKindMalformedConfig    ErrorKind = "malformed_config"
	ErrorKindInvalidInput       ErrorKind = "invalid_input"
	ErrorKindUnknown            ErrorKind = "unknown"
)

// KindOf maps err to its ErrorKind. A nil error maps to ErrorKindNone.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ErrorKindNone
	case errors.Is(err, ErrUnsupportedVariant):
		return ErrorKindUnsupportedVariant
	case errors.Is(err, ErrInvalidContainer):
		return ErrorKindInvalidContainer
	case errors.Is(err, ErrTruncatedData):
		return ErrorKindTruncatedData
	case errors.Is(err, ErrMalformedConfig):
		return ErrorKindMalformedConfig
	case errors.Is(err, ErrInvalidInput):
		return ErrorKindInvalidInput
	default:
		return ErrorKindUnknown
	}
}
