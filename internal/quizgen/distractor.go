package quizgen

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// distractorCount is the number of wrong options accompanying the correct
// answer in an MCQ option set.
const distractorCount = 3

// syntheticAffixes holds the morphological transforms used to synthesize
// distractors when the corpus pool runs dry. Harder difficulties use less
// obviously wrong affixes. A "-" prefix marks a suffix transform.
var syntheticAffixes = map[Difficulty][]string{
	DifficultyEasy:   {"-s", "-ed", "-ing"},
	DifficultyMedium: {"un", "-tion", "pre"},
	DifficultyHard:   {"anti", "-ism", "pseudo"},
}

// distractors produces exactly 3 distinct wrong options for target.
//
// It draws first from the corpus keyword pool, filtered to words of
// comparable length (within [len-2, len+3]); if that yields fewer than 3,
// it tops up with synthetic morphological variants of the target keyed by
// difficulty; pathological short targets are padded with literal
// "optionN" placeholders. The placeholder path is specified degenerate
// behavior, not an error.
func (g *Generator) distractors(target string, difficulty Difficulty, pool []string) []string {
	out := make([]string, 0, distractorCount)
	seen := make(map[string]bool)

	add := func(w string) bool {
		if w == "" || strings.EqualFold(w, target) || seen[strings.ToLower(w)] {
			return false
		}
		seen[strings.ToLower(w)] = true
		out = append(out, w)
		return len(out) == distractorCount
	}

	minLen := len(target) - 2
	if minLen < 3 {
		minLen = 3
	}
	maxLen := len(target) + 3

	candidates := make([]string, 0, len(pool))
	for _, w := range pool {
		if len(w) >= minLen && len(w) <= maxLen {
			candidates = append(candidates, w)
		}
	}
	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	for _, w := range candidates {
		if add(w) {
			return out
		}
	}

	affixes := syntheticAffixes[difficulty]
	if affixes == nil {
		affixes = syntheticAffixes[DifficultyMedium]
	}
	for _, a := range affixes {
		var v string
		if suffix, ok := strings.CutPrefix(a, "-"); ok {
			v = target + suffix
		} else {
			v = a + target
		}
		if add(v) {
			return out
		}
	}

	for n := 1; len(out) < distractorCount; n++ {
		add(fmt.Sprintf("option%d", n))
	}
	return out
}

// optionSet combines the correct answer with its distractors and shuffles
// them. Exactly one element equals answer.
func optionSet(rng *rand.Rand, answer string, distractors []string) []string {
	options := make([]string, 0, distractorCount+1)
	options = append(options, answer)
	options = append(options, distractors...)
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}
