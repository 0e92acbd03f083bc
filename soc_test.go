package modname

import (
	"slices"
	"testing"
)

func TestParseSOC(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		text        string
		wantLetters string
		wantReasons []string
		target      Target
	}{
		{
			name:        "race level",
			target:      TargetSRB2,
			text:        "Level 1\nTypeOfLevel = Race\n",
			wantLetters: "R",
			wantReasons: []string{"At least one level exists where the type is Race"},
		},
		{
			name:        "unicode whitespace around assignment",
			target:      TargetSRB2,
			text:        "TypeOfLevel\v=\u00a0Race\n\ufeffCharacter 1\n",
			wantLetters: "RC",
		},
		{
			name:        "single player aliases claim once",
			target:      TargetSRB2,
			text:        "typeoflevel = SP\r\nTYPEOFLEVEL=Coop\r\n",
			wantLetters: "S",
			wantReasons: []string{"At least one level exists where the type is Single Player, Co-op, or Competition"},
		},
		{
			name:        "race wins over match on one line",
			target:      TargetSRB2,
			text:        "TypeOfLevel = Match, Race",
			wantLetters: "R",
		},
		{
			name:        "next line claims match",
			target:      TargetSRB2,
			text:        "TypeOfLevel = Race,Match\nTypeOfLevel = Race,Match",
			wantLetters: "RM",
		},
		{
			name:        "claimed category falls through",
			target:      TargetSRB2,
			text:        "typeoflevel = solo\ntypeoflevel = solo, ctf",
			wantLetters: "SF",
		},
		{
			name:        "ctf on kart",
			target:      TargetSRB2Kart,
			text:        "TypeOfLevel = CTF",
			wantLetters: "KF",
		},
		{
			name:        "ctf ignored on drrr",
			target:      TargetDRRR,
			text:        "TypeOfLevel = CTF, Tutorial",
			wantLetters: "DT",
		},
		{
			name:        "battle",
			target:      TargetSRB2Kart,
			text:        "TypeOfLevel = Battle",
			wantLetters: "KB",
			wantReasons: []string{"This is an SRB2K mod", "At least one level exists where the type is Battle"},
		},
		{
			name:        "character block",
			target:      TargetSRB2,
			text:        "Character 1\nCharacter 2\ncharacters",
			wantLetters: "C",
			wantReasons: []string{"At least one character exists in the SOC"},
		},
		{
			name:        "follower on drrr",
			target:      TargetDRRR,
			text:        "Follower Chao\nTypeOfLevel = CTF",
			wantLetters: "DF",
			wantReasons: []string{"This is a DRRR mod", "At least one follower exists in the SOC"},
		},
		{
			name:        "follower ignored outside drrr",
			target:      TargetSRB2,
			text:        "Follower Chao",
			wantLetters: "",
		},
		{
			name:        "comment lines skipped",
			target:      TargetSRB2,
			text:        "# Character 1\n#TypeOfLevel = Race",
			wantLetters: "",
		},
		{
			name:        "indented hash is not a comment",
			target:      TargetSRB2,
			text:        "  # TypeOfLevel = Race",
			wantLetters: "",
		},
		{
			name:        "only first two parts of assignment",
			target:      TargetSRB2,
			text:        "TypeOfLevel = Battle = Race",
			wantLetters: "B",
		},
		{
			name:        "other keys ignored",
			target:      TargetSRB2,
			text:        "LevelName = Race\nAct = 1\n\n   \n",
			wantLetters: "",
		},
		{
			name:        "key-only character with equals is not a block",
			target:      TargetSRB2,
			text:        "Character = 1",
			wantLetters: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			acc := NewAccumulator(tc.target)
			ParseSOC(tc.text, tc.target, acc)

			if got := lettersString(acc.Letters()); got != tc.wantLetters {
				t.Fatalf("letters=%q, want %q", got, tc.wantLetters)
			}

			if tc.wantReasons != nil && !slices.Equal(acc.Reasons(), tc.wantReasons) {
				t.Fatalf("reasons=%q, want %q", acc.Reasons(), tc.wantReasons)
			}
		})
	}
}

func TestParseSOCIdempotentClaim(t *testing.T) {
	t.Parallel()

	acc := NewAccumulator(TargetSRB2)
	ParseSOC("TypeOfLevel = Single\n", TargetSRB2, acc)
	ParseSOC("TypeOfLevel = Competition\n", TargetSRB2, acc)

	if got := lettersString(acc.Letters()); got != "S" {
		t.Fatalf("letters=%q, want S", got)
	}
	if len(acc.Reasons()) != 1 {
		t.Fatalf("reasons=%q, want exactly one", acc.Reasons())
	}
}

func TestClassifySOCLine(t *testing.T) {
	t.Parallel()

	none := func(Letter) bool { return false }

	claim, ok := classifySOCLine("typeoflevel = race, match", TargetSRB2, none)
	if !ok || claim.letter != LetterRace {
		t.Fatalf("classifySOCLine race/match = %q, %v; want R", claim.letter, ok)
	}

	claim, ok = classifySOCLine("typeoflevel = ctf", TargetDRRR, none)
	if ok {
		t.Fatalf("classifySOCLine ctf on drrr claimed %q", claim.letter)
	}

	claim, ok = classifySOCLine("follower sonic", TargetDRRR, none)
	if !ok || claim.letter != LetterFlag {
		t.Fatalf("classifySOCLine follower = %q, %v; want F", claim.letter, ok)
	}

	onlyC := func(l Letter) bool { return l == LetterCharacter }
	if claim, ok := classifySOCLine("character 5", TargetSRB2, onlyC); ok {
		t.Fatalf("classifySOCLine claimed %q with C taken", claim.letter)
	}
}

func TestSplitAssignment(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in   string
		want []string
	}{
		{in: "", want: []string{""}},
		{in: "character 1", want: []string{"character 1"}},
		{in: "a = b", want: []string{"a", "b"}},
		{in: "a=", want: []string{"a", ""}},
		{in: "=", want: []string{"", ""}},
		{in: "a = b = c", want: []string{"a", "b"}},
		{in: "a\v=\u00a0b", want: []string{"a", "b"}},
	}

	for _, tc := range testCases {
		got := splitAssignment(tc.in)
		if !slices.Equal(got, tc.want) {
			t.Fatalf("splitAssignment(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestClassifySOCLineUnicodeSpace(t *testing.T) {
	t.Parallel()

	none := func(Letter) bool { return false }

	testCases := []struct {
		name   string
		line   string
		target Target
		want   Letter
	}{
		{name: "vertical tab", line: "typeoflevel\v=\vrace", target: TargetSRB2, want: LetterRace},
		{name: "nbsp list", line: "typeoflevel = ctf\u00a0,\u00a0match", target: TargetSRB2, want: LetterMatch},
		{name: "leading zero width nbsp", line: "\ufeffcharacter 1", target: TargetSRB2, want: LetterCharacter},
		{name: "trailing ideographic space", line: "typeoflevel = battle\u3000", target: TargetSRB2Kart, want: LetterBattle},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			claim, ok := classifySOCLine(tc.line, tc.target, none)
			if !ok || claim.letter != tc.want {
				t.Fatalf("classifySOCLine(%q) = %q, %v; want %q", tc.line, claim.letter, ok, tc.want)
			}
		})
	}
}
