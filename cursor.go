// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/srb2modname

package modname

import (
	"encoding/binary"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// byteCursor reads fixed-width little-endian fields from an in-memory buffer.
type byteCursor struct {
	data []byte
	pos  uint64
}

// newByteCursor wraps data with cursor at offset zero.
func newByteCursor(data []byte) *byteCursor {
	return &byteCursor{data: data}
}

// window returns data[off:off+n] or ErrTruncatedData.
func (c *byteCursor) window(off uint64, n uint64) ([]byte, error) {
	size := uint64(len(c.data))
	if off > size || n > size-off {
		return nil, fmt.Errorf("%w: %d bytes at offset %d, buffer is %d bytes", ErrTruncatedData, n, off, size)
	}

	return c.data[off : off+n], nil
}

// next returns the next n bytes and advances the cursor.
func (c *byteCursor) next(n uint64) ([]byte, error) {
	b, err := c.window(c.pos, n)
	if err != nil {
		return nil, err
	}

	c.pos += n
	return b, nil
}

// readFourCC reads a 4 byte tag.
func (c *byteCursor) readFourCC() (string, error) {
	b, err := c.next(4)
	if err != nil {
		return "", err
	}

	return decodeASCII(b), nil
}

// readU32LE reads a little-endian uint32.
func (c *byteCursor) readU32LE() (uint32, error) {
	b, err := c.next(4)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(b), nil
}

// seek moves the cursor to an absolute offset.
func (c *byteCursor) seek(off uint32) {
	c.pos = uint64(off)
}

// readPaddedName reads an n byte name field.
// Every zero byte in the field is dropped before decoding, not only the
// trailing padding, so "AB\x00CD" reads as "ABCD". Lump matching relies on it.
func (c *byteCursor) readPaddedName(n uint64) (string, error) {
	raw, err := c.next(n)
	if err != nil {
		return "", err
	}

	kept := make([]byte, 0, len(raw))
	for _, ch := range raw {
		if ch != 0 {
			kept = append(kept, ch)
		}
	}

	return strings.ToUpper(decodeASCII(kept)), nil
}

// readBytesAt returns a window of the buffer without moving the cursor.
func (c *byteCursor) readBytesAt(off uint32, n uint32) ([]byte, error) {
	return c.window(uint64(off), uint64(n))
}

// decodeASCII decodes single-byte text the way a browser "ascii" decoder
// does, which is Windows-1252.
func decodeASCII(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, ch := range b {
		if ch < 0x80 {
			sb.WriteByte(ch)
			continue
		}

		sb.WriteRune(charmap.Windows1252.DecodeByte(ch))
	}

	return sb.String()
}
