// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/srb2modname

package modname

import "github.com/woozymasta/pathrules"

// WAD binary layout.
const (
	wadHeaderSize   = 12 // tag + lump count + directory offset
	wadDirEntrySize = 16 // offset + size + name
	wadNameSize     = 8  // NUL-padded lump name
)

// Directory container tags.
const (
	TagPWAD = "PWAD" // patch WAD
	TagIWAD = "IWAD" // internal WAD
	TagSDLL = "SDLL" // hidden WAD shipped as srb2.dll by Demo 4
	TagZWAD = "ZWAD" // compressed WAD, not supported
)

// ContainerKind selects how raw container bytes are read.
type ContainerKind string

// Supported container kinds.
const (
	// KindWAD is the lump directory format (.wad, .dll).
	KindWAD ContainerKind = "wad"
	// KindPK3 is the zip based archive format (.pk3).
	KindPK3 ContainerKind = "pk3"
)

// Extension returns the file extension used for the assembled name.
func (k ContainerKind) Extension() string {
	switch k {
	case KindWAD:
		return ".wad"
	case KindPK3:
		return ".pk3"
	default:
		return ""
	}
}

// LumpEntry describes one WAD directory record.
type LumpEntry struct {
	// Name is the upper-cased lump name with every NUL byte removed.
	Name string `json:"name" yaml:"name"`
	// Offset is byte offset of lump payload in the WAD.
	Offset uint32 `json:"offset" yaml:"offset"`
	// Size is lump payload size in bytes.
	Size uint32 `json:"size" yaml:"size"`
}

// ArchiveEntry is one named PK3 entry with its uncompressed content.
type ArchiveEntry struct {
	// Path is the entry path as stored in the archive.
	Path string `json:"path" yaml:"path"`
	// Data is the uncompressed entry content.
	Data []byte `json:"-" yaml:"-"`
}

// Result is the outcome of one classification run.
type Result struct {
	// FileName is the assembled standardized file name.
	FileName string `json:"file_name" yaml:"file_name"`
	// Prefix is the sorted category letters used in FileName.
	Prefix string `json:"prefix" yaml:"prefix"`
	// Reasons explain each letter, in detection order.
	Reasons []string `json:"reasons" yaml:"reasons"`
}

// EntryRole tells how the scanner treated one container entry.
type EntryRole string

// Entry roles reported through Options.OnEntry.
const (
	EntryRoleConfig   EntryRole = "config"
	EntryRoleLua      EntryRole = "lua"
	EntryRoleSkin     EntryRole = "skin"
	EntryRoleOther    EntryRole = "other"
	EntryRoleExcluded EntryRole = "excluded"
)

// EntryEvent is emitted once for every scanned lump or archive entry.
type EntryEvent struct {
	// Path is lump name for WAD or entry path for PK3.
	Path string `json:"path" yaml:"path"`
	// Role is how the entry was classified.
	Role EntryRole `json:"role" yaml:"role"`
	// Size is entry payload size in bytes.
	Size int64 `json:"size" yaml:"size"`
}

// Options configures classification behavior.
type Options struct {
	// OnEntry is called after each entry is classified.
	OnEntry func(event EntryEvent) `json:"-" yaml:"-"`
	// Exclude lists PK3 path rules; matched entries are skipped before classification.
	Exclude []pathrules.Rule `json:"exclude,omitempty" yaml:"exclude,omitempty"`
	// ExcludeMatcherOptions control exclude rule matching.
	// Default is case-insensitive matching that includes unmatched paths.
	ExcludeMatcherOptions pathrules.MatcherOptions `json:"exclude_matcher_options,omitzero" yaml:"exclude_matcher_options,omitzero"`
	// StrictUTF8 fails with ErrMalformedConfig on invalid UTF-8 in SOC text
	// instead of replacing bad sequences with U+FFFD.
	StrictUTF8 bool `json:"strict_utf8,omitempty" yaml:"strict_utf8,omitempty"`
}

// applyDefaults fills zero-valued options with defaults.
func (opts *Options) applyDefaults() {
	if opts.ExcludeMatcherOptions == (pathrules.MatcherOptions{}) {
		opts.ExcludeMatcherOptions = pathrules.MatcherOptions{
			CaseInsensitive: true,
			DefaultAction:   pathrules.ActionInclude,
		}
	}

	if opts.ExcludeMatcherOptions.DefaultAction == pathrules.ActionUnknown {
		opts.ExcludeMatcherOptions.DefaultAction = pathrules.ActionInclude
	}
}

// emit reports one entry event when a callback is set.
func (opts *Options) emit(path string, role EntryRole, size int64) {
	if opts.OnEntry == nil {
		return
	}

	opts.OnEntry(EntryEvent{Path: path, Role: role, Size: size})
}
