// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/srb2modname

package modname

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
)

// socSpaceClass is the ECMAScript \s set; RE2 \s lacks \v, NBSP and U+FEFF.
const socSpaceClass = `[\t\n\v\f\r\p{Zs}\x{2028}\x{2029}\x{feff}]`

var (
	// socAssignSplit splits "key = value" lines.
	socAssignSplit = regexp.MustCompile(socSpaceClass + `*=` + socSpaceClass + `*`)
	// socListSplit splits comma separated value lists.
	socListSplit = regexp.MustCompile(socSpaceClass + `*,` + socSpaceClass + `*`)
)

// isSOCSpace reports whether r belongs to socSpaceClass.
func isSOCSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\ufeff':
		return true
	}

	return unicode.Is(unicode.Zs, r)
}

// levelTypeRule maps TypeOfLevel tokens to one category letter.
type levelTypeRule struct {
	reason string
	tokens []string
	letter Letter
	// noDRRR disables the rule when parsing DRRR SOCs.
	noDRRR bool
}

// levelTypeRules are checked in order; one line claims at most one letter.
var levelTypeRules = []levelTypeRule{
	{
		letter: LetterSinglePlayer,
		tokens: []string{"singleplayer", "single", "solo", "sp", "co-op", "coop", "competition"},
		reason: "At least one level exists where the type is Single Player, Co-op, or Competition",
	},
	{
		letter: LetterRace,
		tokens: []string{"race"},
		reason: "At least one level exists where the type is Race",
	},
	{
		letter: LetterMatch,
		tokens: []string{"match"},
		reason: "At least one level exists where the type is Match",
	},
	{
		letter: LetterFlag,
		tokens: []string{"ctf"},
		reason: "At least one level exists where the type is CTF",
		noDRRR: true,
	},
	{
		letter: LetterBattle,
		tokens: []string{"battle"},
		reason: "At least one level exists where the type is Battle",
	},
	{
		letter: LetterTutorial,
		tokens: []string{"tutorial"},
		reason: "At least one level exists where the type is Tutorial",
	},
}

// socClaim is a category decision for one SOC line.
type socClaim struct {
	reason string
	letter Letter
}

// ParseSOC scans SOC text and claims categories into acc.
// Matching is case-insensitive, like the game's own SOC reader.
func ParseSOC(text string, target Target, acc *Accumulator) {
	for line := range strings.SplitSeq(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.HasPrefix(line, "#") {
			continue
		}

		if claim, ok := classifySOCLine(strings.ToLower(line), target, acc.Has); ok {
			acc.Claim(claim.letter, claim.reason)
		}
	}
}

// classifySOCLine decides which unclaimed category a lower-cased SOC line
// claims, if any.
func classifySOCLine(lowered string, target Target, claimed func(Letter) bool) (socClaim, bool) {
	parts := splitAssignment(strings.TrimFunc(lowered, isSOCSpace))

	if len(parts) == 2 {
		if parts[0] != "typeoflevel" {
			return socClaim{}, false
		}

		tokens := socListSplit.Split(parts[1], -1)
		return matchLevelType(tokens, target, claimed)
	}

	block := parts[0]
	if block == "" {
		return socClaim{}, false
	}

	if !claimed(LetterCharacter) && strings.HasPrefix(block, "character") {
		return socClaim{letter: LetterCharacter, reason: "At least one character exists in the SOC"}, true
	}

	if target.Valid() && target.profile().followers && !claimed(LetterFlag) && strings.HasPrefix(block, "follower") {
		return socClaim{letter: LetterFlag, reason: "At least one follower exists in the SOC"}, true
	}

	return socClaim{}, false
}

// splitAssignment splits on every "=" and keeps the first two parts.
// Text after a second "=" is dropped: "a = b = c" yields ["a", "b"].
func splitAssignment(line string) []string {
	parts := socAssignSplit.Split(line, -1)
	if len(parts) > 2 {
		parts = parts[:2]
	}

	return parts
}

// matchLevelType returns the first unclaimed category matched by tokens.
func matchLevelType(tokens []string, target Target, claimed func(Letter) bool) (socClaim, bool) {
	ctfAllowed := target.Valid() && target.profile().ctfLevels

	for _, rule := range levelTypeRules {
		if rule.noDRRR && !ctfAllowed {
			continue
		}
		if claimed(rule.letter) {
			continue
		}
		if slices.ContainsFunc(rule.tokens, func(tok string) bool { return slices.Contains(tokens, tok) }) {
			return socClaim{letter: rule.letter, reason: rule.reason}, true
		}
	}

	return socClaim{}, false
}
