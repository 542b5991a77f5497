package sorter

// Options are the run's tuning knobs. Every constant the chain depends on
// lives here so callers tune them in one place.
type Options struct {
	// SimilarityThreshold is the minimum fuzzy title ratio a profile must
	// reach in the title_similarity stage.
	SimilarityThreshold float64

	// MaxAICalls caps title and content classifier calls combined for the
	// whole run.
	MaxAICalls int

	// MaxBytes is the per-file download ceiling. Negative disables it.
	MaxBytes int64

	// TextMax caps extracted text, in runes, before prompt construction.
	TextMax int

	// Concurrency bounds the worker pool running per-file pipelines.
	Concurrency int

	// AICallsPerMinute rate-limits classifier calls. 0 disables.
	AICallsPerMinute int

	// DryRun classifies and reports without performing any move.
	DryRun bool
}

// DefaultOptions returns the tuned defaults.
func DefaultOptions() Options {
	return Options{
		SimilarityThreshold: 0.82,
		MaxAICalls:          25,
		MaxBytes:            20 << 20,
		TextMax:             8000,
		Concurrency:         4,
	}
}

// withDefaults fills unset fields. MaxBytes keeps a negative value, which
// means "no ceiling".
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.SimilarityThreshold <= 0 {
		o.SimilarityThreshold = def.SimilarityThreshold
	}
	if o.MaxAICalls <= 0 {
		o.MaxAICalls = def.MaxAICalls
	}
	if o.MaxBytes == 0 {
		o.MaxBytes = def.MaxBytes
	}
	if o.TextMax <= 0 {
		o.TextMax = def.TextMax
	}
	if o.Concurrency <= 0 {
		o.Concurrency = def.Concurrency
	}
	return o
}
