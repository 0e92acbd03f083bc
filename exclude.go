// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/srb2modname

package modname

import (
	"fmt"

	"github.com/woozymasta/pathrules"
)

// excludeMatcher holds compiled rules for skipping PK3 entries.
type excludeMatcher struct {
	matcher *pathrules.Matcher
}

// newExcludeMatcher compiles exclude path rules. Empty rules yield a nil matcher.
func newExcludeMatcher(rules []pathrules.Rule, opts pathrules.MatcherOptions) (*excludeMatcher, error) {
	rules = normalizeRules(rules)
	if len(rules) == 0 {
		return nil, nil
	}

	matcher, err := pathrules.NewMatcher(rules, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: compile exclude rules: %w", ErrInvalidInput, err)
	}

	return &excludeMatcher{matcher: matcher}, nil
}

// normalizeRules normalizes rule patterns and drops empty patterns.
func normalizeRules(rules []pathrules.Rule) []pathrules.Rule {
	normalized := make([]pathrules.Rule, 0, len(rules))
	for _, rule := range rules {
		pattern := normalizePathForMatching(rule.Pattern)
		if pattern == "" {
			continue
		}

		normalized = append(normalized, pathrules.Rule{
			Action:  rule.Action,
			Pattern: pattern,
		})
	}

	return normalized
}

// Match reports whether path is excluded by the rules.
func (m *excludeMatcher) Match(path string) bool {
	if m == nil || m.matcher == nil {
		return false
	}

	candidate := NormalizePath(path)
	if candidate == "" {
		return false
	}

	return !m.matcher.Included(candidate, false)
}

// ExcludeRules builds exclude rules from raw patterns.
// A pattern starting with "!" re-includes paths, as in .gitignore.
func ExcludeRules(patterns ...string) []pathrules.Rule {
	rules := make([]pathrules.Rule, 0, len(patterns))
	for _, pattern := range patterns {
		action := pathrules.ActionExclude
		if len(pattern) > 1 && pattern[0] == '!' {
			action = pathrules.ActionInclude
			pattern = pattern[1:]
		}

		pattern = normalizePathForMatching(pattern)
		if pattern == "" {
			continue
		}

		rules = append(rules, pathrules.Rule{Action: action, Pattern: pattern})
	}

	return rules
}
