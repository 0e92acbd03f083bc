// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/srb2modname

package modname

import (
	"slices"
	"strings"
)

// Letter is one category letter of the file name prefix.
type Letter byte

// Category letters.
const (
	LetterSinglePlayer Letter = 'S'
	LetterRace         Letter = 'R'
	LetterMatch        Letter = 'M'
	LetterFlag         Letter = 'F' // CTF levels, or followers on DRRR
	LetterBattle       Letter = 'B'
	LetterTutorial     Letter = 'T'
	LetterCharacter    Letter = 'C'
	LetterLua          Letter = 'L'
	LetterKart         Letter = 'K'
	LetterRingRacers   Letter = 'D'
)

// Justifications shared by both container scanners.
const (
	reasonLua  = "At least one Lua script is present"
	reasonSkin = "At least one P_SKIN or S_SKIN lump is present"
)

// String returns the letter as a one character string.
func (l Letter) String() string {
	return string(rune(l))
}

// Accumulator collects category letters with their justifications.
// A letter is stored at most once; the first claim wins.
type Accumulator struct {
	letters []Letter
	reasons []string
}

// NewAccumulator returns an accumulator seeded with the target's game letter.
func NewAccumulator(target Target) *Accumulator {
	acc := &Accumulator{
		letters: make([]Letter, 0, 8),
		reasons: make([]string, 0, 8),
	}

	if target.Valid() {
		p := target.profile()
		if p.seed != 0 {
			acc.Claim(p.seed, p.seedReason)
		}
	}

	return acc
}

// Claim appends letter with reason unless letter is already present.
// It reports whether the letter was added.
func (a *Accumulator) Claim(letter Letter, reason string) bool {
	if a.Has(letter) {
		return false
	}

	a.letters = append(a.letters, letter)
	a.reasons = append(a.reasons, reason)
	return true
}

// Has reports whether letter was already claimed.
func (a *Accumulator) Has(letter Letter) bool {
	return slices.Contains(a.letters, letter)
}

// Letters returns claimed letters in detection order.
func (a *Accumulator) Letters() []Letter {
	return slices.Clone(a.letters)
}

// Reasons returns justifications in detection order.
func (a *Accumulator) Reasons() []string {
	return slices.Clone(a.reasons)
}

// SortLetters returns letters ordered by the target rank table.
// Ranked letters come first; unranked letters keep their relative order.
func SortLetters(target Target, letters []Letter) []Letter {
	out := slices.Clone(letters)
	if !target.Valid() {
		return out
	}

	ranks := target.profile().ranks
	slices.SortStableFunc(out, func(a, b Letter) int {
		ra, okA := ranks[a]
		rb, okB := ranks[b]
		switch {
		case okA && okB:
			return ra - rb
		case okA:
			return -1
		case okB:
			return 1
		default:
			return 0
		}
	})

	return out
}

// assemble builds the final result from accumulated letters.
func assemble(acc *Accumulator, target Target, kind ContainerKind, name, version string) Result {
	sorted := SortLetters(target, acc.letters)

	var prefix strings.Builder
	prefix.Grow(len(sorted))
	for _, l := range sorted {
		prefix.WriteByte(byte(l))
	}

	var b strings.Builder
	b.Grow(prefix.Len() + len(name) + len(version) + 8)
	b.WriteString(prefix.String())
	b.WriteString("_")
	b.WriteString(name)
	b.WriteString("_v")
	b.WriteString(version)
	b.WriteString(kind.Extension())

	return Result{
		FileName: b.String(),
		Prefix:   prefix.String(),
		Reasons:  acc.Reasons(),
	}
}
