// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/srb2modname

package modname

import (
	"fmt"
	"strings"
)

// wadHeader is the fixed WAD header block.
type wadHeader struct {
	tag       string
	lumpCount uint32
	dirOffset uint32
}

// readWADHeader validates the tag and reads lump count and directory offset.
func readWADHeader(c *byteCursor) (wadHeader, error) {
	tag, err := c.readFourCC()
	if err != nil {
		return wadHeader{}, fmt.Errorf("read WAD tag: %w", err)
	}

	switch tag {
	case TagPWAD, TagIWAD, TagSDLL:
	case TagZWAD:
		return wadHeader{}, fmt.Errorf("%w: ZWAD is not supported yet", ErrUnsupportedVariant)
	default:
		return wadHeader{}, fmt.Errorf("%w: bad WAD tag %q", ErrInvalidContainer, tag)
	}

	count, err := c.readU32LE()
	if err != nil {
		return wadHeader{}, fmt.Errorf("read lump count: %w", err)
	}

	dirOffset, err := c.readU32LE()
	if err != nil {
		return wadHeader{}, fmt.Errorf("read directory offset: %w", err)
	}

	return wadHeader{tag: tag, lumpCount: count, dirOffset: dirOffset}, nil
}

// readLumpEntry reads one directory record at the cursor.
func readLumpEntry(c *byteCursor) (LumpEntry, error) {
	offset, err := c.readU32LE()
	if err != nil {
		return LumpEntry{}, fmt.Errorf("read lump offset: %w", err)
	}

	size, err := c.readU32LE()
	if err != nil {
		return LumpEntry{}, fmt.Errorf("read lump size: %w", err)
	}

	name, err := c.readPaddedName(wadNameSize)
	if err != nil {
		return LumpEntry{}, fmt.Errorf("read lump name: %w", err)
	}

	return LumpEntry{Name: name, Offset: offset, Size: size}, nil
}

// walkWAD validates the header and calls fn for every directory entry in order.
func walkWAD(data []byte, fn func(c *byteCursor, lump LumpEntry) error) (wadHeader, error) {
	c := newByteCursor(data)
	header, err := readWADHeader(c)
	if err != nil {
		return wadHeader{}, err
	}

	c.seek(header.dirOffset)
	for i := uint32(0); i < header.lumpCount; i++ {
		lump, err := readLumpEntry(c)
		if err != nil {
			return wadHeader{}, fmt.Errorf("lump %d: %w", i, err)
		}

		if err := fn(c, lump); err != nil {
			return wadHeader{}, err
		}
	}

	return header, nil
}

// ListLumps returns the WAD directory in stored order.
func ListLumps(data []byte) ([]LumpEntry, error) {
	var lumps []LumpEntry
	_, err := walkWAD(data, func(_ *byteCursor, lump LumpEntry) error {
		lumps = append(lumps, lump)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return lumps, nil
}

// isWADConfigLump reports whether a lump holds SOC text.
func isWADConfigLump(name string) bool {
	return name == "MAINCFG" || strings.HasPrefix(name, "SOC")
}

// scanWAD walks the lump directory and claims categories into acc.
func scanWAD(data []byte, target Target, acc *Accumulator, opts *Options) error {
	hasLua := false

	_, err := walkWAD(data, func(c *byteCursor, lump LumpEntry) error {
		switch {
		case strings.HasPrefix(lump.Name, "LUA_"):
			hasLua = true
			opts.emit(lump.Name, EntryRoleLua, int64(lump.Size))

		case isWADConfigLump(lump.Name):
			raw, err := c.readBytesAt(lump.Offset, lump.Size)
			if err != nil {
				return fmt.Errorf("read lump %s: %w", lump.Name, err)
			}

			text, err := decodeSOCText(lump.Name, raw, opts.StrictUTF8)
			if err != nil {
				return err
			}

			ParseSOC(text, target, acc)
			opts.emit(lump.Name, EntryRoleConfig, int64(lump.Size))

		default:
			opts.emit(lump.Name, EntryRoleOther, int64(lump.Size))
		}

		return nil
	})
	if err != nil {
		return err
	}

	if hasLua {
		acc.Claim(LetterLua, reasonLua)
	}

	return nil
}
