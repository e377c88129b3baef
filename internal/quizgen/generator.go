package quizgen

import (
	"math/rand/v2"
	"strings"
)

// Generator produces quiz sets from raw text. All randomness (sentence and
// word selection, shuffles) flows through a single seedable source, so a
// Generator with a fixed seed is deterministically replayable. A Generator
// is not safe for concurrent use; create one per generation request.
type Generator struct {
	cfg  Config
	seed uint64
	rng  *rand.Rand
}

// New creates a Generator. When cfg.Seed is zero a fresh seed is drawn, so
// production runs vary while tests can pin one.
func New(cfg Config) *Generator {
	if cfg.MinTextLen == 0 {
		cfg.MinTextLen = DefaultConfig().MinTextLen
	}
	if cfg.AttemptFactor == 0 {
		cfg.AttemptFactor = DefaultConfig().AttemptFactor
	}
	seed := cfg.Seed
	for seed == 0 {
		seed = rand.Uint64()
	}
	return &Generator{
		cfg:  cfg,
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, seed)),
	}
}

// Seed returns the seed this Generator runs with.
func (g *Generator) Seed() uint64 { return g.seed }

// Generate runs the full pipeline: validate, dispatch to the builder for
// the requested type, top up any deficit through the fallback path, then
// deduplicate, shuffle, and truncate to the requested count.
//
// Errors are terminal for the call: *ErrInsufficientInput when the trimmed
// text is below the minimum length, *ErrUnsupportedType for an unknown
// quiz type, and *ErrEmptyGeneration when not a single question could be
// built. Fewer questions than requested (but more than zero) is not an
// error; it means the source text could not support the full count.
func (g *Generator) Generate(req Request) (*QuizSet, error) {
	trimmed := strings.TrimSpace(req.Text)
	if len(trimmed) < g.cfg.MinTextLen {
		return nil, &ErrInsufficientInput{Length: len(trimmed), Min: g.cfg.MinTextLen}
	}

	var questions []Question
	switch req.Type {
	case TypeMCQ:
		questions = g.buildMCQ(req)
	case TypeFillup:
		questions = g.buildFillup(req)
	case TypeQA:
		questions = g.buildQA(req)
	default:
		return nil, &ErrUnsupportedType{Type: req.Type}
	}

	if len(questions) < req.Count {
		questions = append(questions, g.buildFallback(req, req.Count-len(questions))...)
	}

	questions = dedupeByPrompt(questions)
	if len(questions) == 0 {
		return nil, &ErrEmptyGeneration{Type: req.Type}
	}

	// Shuffle so the output order does not leak original sentence order.
	g.rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	if len(questions) > req.Count {
		questions = questions[:req.Count]
	}

	return &QuizSet{
		Title:        req.Title,
		Type:         req.Type,
		Difficulty:   req.Difficulty,
		SourceLength: len(trimmed),
		Seed:         g.seed,
		Questions:    questions,
	}, nil
}

// dedupeByPrompt drops questions whose prompt already appeared, keeping the
// first occurrence. The fallback path iterates sentences positionally and
// can land on a sentence a primary builder already consumed.
func dedupeByPrompt(questions []Question) []Question {
	seen := make(map[string]bool, len(questions))
	out := questions[:0]
	for _, q := range questions {
		if seen[q.Prompt] {
			continue
		}
		seen[q.Prompt] = true
		out = append(out, q)
	}
	return out
}

// maxAttempts returns the bounded number of sentence draws for a builder.
func (g *Generator) maxAttempts(count int) int {
	return g.cfg.AttemptFactor * count
}

// pick returns a random element of items.
func pick(rng *rand.Rand, items []string) string {
	return items[rng.IntN(len(items))]
}
