// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/srb2modname

package modname

import (
	"fmt"
	"strings"
)

// Target is the game a mod is built for.
type Target uint8

// Supported targets.
const (
	// TargetSRB2 is Sonic Robo Blast 2.
	TargetSRB2 Target = iota
	// TargetSRB2Kart is SRB2Kart.
	TargetSRB2Kart
	// TargetDRRR is Dr. Robotnik's Ring Racers.
	TargetDRRR
)

// targetProfile holds the fixed per-target parsing and naming rules.
type targetProfile struct {
	ranks      map[Letter]int
	name       string
	seedReason string
	seed       Letter
	// ctfLevels allows TypeOfLevel = CTF to claim F.
	ctfLevels bool
	// followers allows a "Follower" SOC block to claim F.
	followers bool
}

var targetProfiles = [...]targetProfile{
	TargetSRB2: {
		name: "srb2",
		ranks: map[Letter]int{
			'P': 0, 'S': 1, 'R': 2, 'M': 3, 'F': 4, 'C': 5, 'L': 6,
		},
		ctfLevels: true,
	},
	TargetSRB2Kart: {
		name: "srb2k",
		ranks: map[Letter]int{
			'K': 0, 'R': 1, 'B': 2, 'C': 3, 'L': 4,
		},
		seed:       'K',
		seedReason: "This is an SRB2K mod",
		ctfLevels:  true,
	},
	TargetDRRR: {
		name: "drrr",
		ranks: map[Letter]int{
			'D': 0, 'R': 1, 'B': 2, 'S': 3, 'T': 4, 'C': 5, 'F': 6, 'L': 7,
		},
		seed:       'D',
		seedReason: "This is a DRRR mod",
		followers:  true,
	},
}

// Targets returns all supported targets in declaration order.
func Targets() []Target {
	return []Target{TargetSRB2, TargetSRB2Kart, TargetDRRR}
}

// ParseTarget resolves a target from its short name (srb2, srb2k, drrr).
func ParseTarget(raw string) (Target, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	for _, t := range Targets() {
		if targetProfiles[t].name == name {
			return t, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown target %q", ErrInvalidInput, raw)
}

// Valid reports whether t is a supported target.
func (t Target) Valid() bool {
	return int(t) < len(targetProfiles)
}

// String returns the short target name.
func (t Target) String() string {
	if !t.Valid() {
		return fmt.Sprintf("target(%d)", uint8(t))
	}

	return targetProfiles[t].name
}

// Ranks returns a copy of the letter rank table used to order the prefix.
func (t Target) Ranks() map[Letter]int {
	if !t.Valid() {
		return nil
	}

	out := make(map[Letter]int, len(targetProfiles[t].ranks))
	for l, r := range targetProfiles[t].ranks {
		out[l] = r
	}

	return out
}

// profile returns fixed rules for a valid target.
func (t Target) profile() *targetProfile {
	return &targetProfiles[t]
}
