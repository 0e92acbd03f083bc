// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/srb2modname

package main

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	modname "github.com/woozymasta/srb2modname"
)

// writeWAD writes a PWAD with one lump per name/data pair and returns its path.
func writeWAD(t *testing.T, dir, file string, lumps map[string]string, order ...string) string {
	t.Helper()

	var payload bytes.Buffer
	offsets := make([]uint32, len(order))
	for i, name := range order {
		offsets[i] = uint32(12 + payload.Len())
		payload.WriteString(lumps[name])
	}

	out := []byte("PWAD")
	out = binary.LittleEndian.AppendUint32(out, uint32(len(order)))
	out = binary.LittleEndian.AppendUint32(out, uint32(12+payload.Len()))
	out = append(out, payload.Bytes()...)
	for i, name := range order {
		out = binary.LittleEndian.AppendUint32(out, offsets[i])
		out = binary.LittleEndian.AppendUint32(out, uint32(len(lumps[name])))
		var padded [8]byte
		copy(padded[:], name)
		out = append(out, padded[:]...)
	}

	path := filepath.Join(dir, file)
	if err := os.WriteFile(path, out, 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestRunClassifySingleFile(t *testing.T) {
	t.Parallel()

	path := writeWAD(t, t.TempDir(), "whatever.wad", map[string]string{
		"MAINCFG": "TypeOfLevel = Race",
		"LUA_X":   "--",
	}, "MAINCFG", "LUA_X")

	var out bytes.Buffer
	err := runClassify(&out, discardLogger(), classifyFlags{
		target:  "srb2",
		name:    "My Mod",
		version: "1.0",
		workers: 2,
	}, []string{path})
	if err != nil {
		t.Fatalf("runClassify: %v", err)
	}

	want := "RL_My_Mod_v1.0.wad\n" +
		"  1. At least one level exists where the type is Race\n" +
		"  2. At least one Lua script is present\n"
	if out.String() != want {
		t.Fatalf("output=%q, want %q", out.String(), want)
	}
}

func TestRunClassifyBatchJSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := writeWAD(t, dir, "Ring Pack.wad", map[string]string{"SOC_A": "TypeOfLevel = Battle"}, "SOC_A")
	bad := filepath.Join(dir, "broken.wad")
	if err := os.WriteFile(bad, []byte("ZWAD\x00\x00\x00\x00\x00\x00\x00\x00"), 0o600); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	err := runClassify(&out, discardLogger(), classifyFlags{
		target:     "srb2k",
		version:    "2",
		workers:    4,
		jsonOutput: true,
	}, []string{good, bad})
	if !errors.Is(err, errSomeFailed) {
		t.Fatalf("expected errSomeFailed, got %v", err)
	}

	var reports []fileReport
	if err := json.Unmarshal(out.Bytes(), &reports); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out.String())
	}
	if len(reports) != 2 {
		t.Fatalf("len(reports)=%d, want 2", len(reports))
	}
	if reports[0].FileName != "KB_Ring_Pack_v2.wad" {
		t.Fatalf("reports[0].FileName=%q, want KB_Ring_Pack_v2.wad", reports[0].FileName)
	}
	if reports[1].ErrorKind != modname.ErrorKindUnsupportedVariant {
		t.Fatalf("reports[1].ErrorKind=%q, want %q", reports[1].ErrorKind, modname.ErrorKindUnsupportedVariant)
	}
}

func TestRunClassifyInputErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		flags classifyFlags
		paths []string
	}{
		{name: "bad target", flags: classifyFlags{target: "doom", version: "1"}, paths: []string{"a.wad"}},
		{name: "name with many files", flags: classifyFlags{target: "srb2", name: "x", version: "1"}, paths: []string{"a.wad", "b.wad"}},
		{name: "strict version", flags: classifyFlags{target: "srb2", version: "beta", strictVersion: true}, paths: []string{"a.wad"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			if err := runClassify(&out, discardLogger(), tc.flags, tc.paths); err == nil {
				t.Fatal("expected error")
			}
			if out.Len() != 0 {
				t.Fatalf("unexpected output %q", out.String())
			}
		})
	}
}

func TestRunClassifyVerboseLogsEntries(t *testing.T) {
	t.Parallel()

	path := writeWAD(t, t.TempDir(), "m.wad", map[string]string{"LUA_A": "--"}, "LUA_A")

	var logs bytes.Buffer
	err := runClassify(io.Discard, log.New(&logs, "", 0), classifyFlags{
		target:        "drrr",
		version:       "v1.2.3",
		workers:       1,
		verbose:       true,
		strictVersion: true,
	}, []string{path})
	if err != nil {
		t.Fatalf("runClassify: %v", err)
	}
	if !strings.Contains(logs.String(), "LUA_A") {
		t.Fatalf("verbose log misses lump: %q", logs.String())
	}
}

func TestPrintTargets(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	printTargets(&out)

	want := "srb2   PSRMFCL\nsrb2k  KRBCL\ndrrr   DRBSTCFL\n"
	if out.String() != want {
		t.Fatalf("printTargets=%q, want %q", out.String(), want)
	}
}

func TestPrintLumps(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := printLumps(&out, []modname.LumpEntry{{Name: "MAINCFG", Offset: 12, Size: 3}})
	if err != nil {
		t.Fatalf("printLumps: %v", err)
	}
	if !strings.Contains(out.String(), "MAINCFG") || !strings.HasPrefix(out.String(), "#") {
		t.Fatalf("unexpected table %q", out.String())
	}
}
