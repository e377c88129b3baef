package quizgen

// Config controls the behavior of a Generator.
type Config struct {
	// Seed for the random source. Zero means pick a fresh seed, which is
	// the production default; tests fix it for deterministic replay.
	Seed uint64

	// MinTextLen is the minimum trimmed length of source text accepted
	// by Generate. Below it every builder would lack workable sentences.
	MinTextLen int

	// AttemptFactor bounds builder retries at AttemptFactor × count
	// sentence draws, preventing infinite loops on sparse text.
	AttemptFactor int
}

// DefaultConfig returns the recommended defaults.
func DefaultConfig() Config {
	return Config{
		MinTextLen:    100,
		AttemptFactor: 5,
	}
}
