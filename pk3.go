// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/srb2modname

package modname

import "strings"

// pk3EntryRole classifies a lower-cased PK3 entry path. First match wins.
func pk3EntryRole(lowered string) EntryRole {
	switch {
	case strings.HasPrefix(lowered, "soc/"):
		return EntryRoleConfig
	case (strings.HasPrefix(lowered, "lua/") && len(lowered) > len("lua/")) || lowered == "init.lua":
		return EntryRoleLua
	case strings.HasSuffix(lowered, "p_skin") || strings.HasSuffix(lowered, "s_skin"):
		return EntryRoleSkin
	default:
		return EntryRoleOther
	}
}

// scanPK3 walks archive entries in stored order and claims categories into acc.
// Entries sharing a path are scanned once, with the last copy's content.
func scanPK3(entries []ArchiveEntry, target Target, acc *Accumulator, opts *Options) error {
	exclude, err := newExcludeMatcher(opts.Exclude, opts.ExcludeMatcherOptions)
	if err != nil {
		return err
	}

	hasLua := false
	for _, entry := range collapseEntries(entries) {
		if strings.HasSuffix(entry.Path, "/") {
			continue
		}

		size := int64(len(entry.Data))
		if exclude.Match(entry.Path) {
			opts.emit(entry.Path, EntryRoleExcluded, size)
			continue
		}

		role := pk3EntryRole(strings.ToLower(entry.Path))
		switch role {
		case EntryRoleConfig:
			text, err := decodeSOCText(entry.Path, entry.Data, opts.StrictUTF8)
			if err != nil {
				return err
			}

			ParseSOC(text, target, acc)
		case EntryRoleLua:
			hasLua = true
		case EntryRoleSkin:
			acc.Claim(LetterCharacter, reasonSkin)
		}

		opts.emit(entry.Path, role, size)
	}

	if hasLua {
		acc.Claim(LetterLua, reasonLua)
	}

	return nil
}
