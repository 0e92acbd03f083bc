package modname

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/klauspost/compress/zip"
)

// testLump is one lump for buildWAD.
type testLump struct {
	name string
	data []byte
}

// buildWAD writes a WAD with payloads right after the header and the directory at the end.
func buildWAD(t *testing.T, tag string, lumps ...testLump) []byte {
	t.Helper()

	if len(tag) != 4 {
		t.Fatalf("tag %q must be 4 bytes", tag)
	}

	var payload bytes.Buffer
	offsets := make([]uint32, len(lumps))
	for i, lump := range lumps {
		offsets[i] = uint32(wadHeaderSize + payload.Len())
		payload.Write(lump.data)
	}

	dirOffset := uint32(wadHeaderSize + payload.Len())
	out := make([]byte, 0, int(dirOffset)+len(lumps)*wadDirEntrySize)
	out = append(out, tag...)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(lumps)))
	out = binary.LittleEndian.AppendUint32(out, dirOffset)
	out = append(out, payload.Bytes()...)

	for i, lump := range lumps {
		if len(lump.name) > wadNameSize {
			t.Fatalf("lump name %q exceeds %d bytes", lump.name, wadNameSize)
		}

		out = binary.LittleEndian.AppendUint32(out, offsets[i])
		out = binary.LittleEndian.AppendUint32(out, uint32(len(lump.data)))
		var name [wadNameSize]byte
		copy(name[:], lump.name)
		out = append(out, name[:]...)
	}

	return out
}

// buildPK3 writes a zip archive with entries in the given order; nil data makes a directory.
func buildPK3(t *testing.T, entries ...ArchiveEntry) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, entry := range entries {
		w, err := zw.Create(entry.Path)
		if err != nil {
			t.Fatalf("create %s: %v", entry.Path, err)
		}
		if entry.Data == nil {
			continue
		}
		if _, err := w.Write(entry.Data); err != nil {
			t.Fatalf("write %s: %v", entry.Path, err)
		}
	}

	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	return buf.Bytes()
}

// lettersString joins letters for compact assertions.
func lettersString(letters []Letter) string {
	b := make([]byte, len(letters))
	for i, l := range letters {
		b[i] = byte(l)
	}

	return string(b)
}
