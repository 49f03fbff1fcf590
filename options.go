package distill

// Options configures a single extraction, per spec.md §3.
type Options struct {
	IncludeComments bool
	IncludeTables   bool
	IncludeImages   bool
	IncludeLinks    bool
	FavorPrecision  bool
	FavorRecall     bool

	// TargetLanguage filters candidate subtrees by element/document lang
	// (ISO-639-1 primary subtag). Empty disables the filter.
	TargetLanguage string

	URL             string
	AuthorBlacklist []string
	Deduplicate     bool

	MinExtractedLen    int
	MaxExtractedLen    int
	MinOutputSize      int // words
	MinOutputCommSize  int // words
	MinScore           int
	MaxLinkDensity     float64
	MinWordLength      int
	DedupCacheSize     int

	UseReadabilityFallback bool
	OutputMarkdown         bool
}

// DefaultOptions returns spec.md §3's documented defaults.
func DefaultOptions() Options {
	return Options{
		IncludeComments:        false,
		IncludeTables:          true,
		IncludeImages:          false,
		IncludeLinks:           false,
		FavorPrecision:         false,
		FavorRecall:            false,
		MinExtractedLen:        200,
		MaxExtractedLen:        1_000_000,
		MinOutputSize:          50,
		MinOutputCommSize:      10,
		MinScore:               1000,
		MaxLinkDensity:         0.8,
		MinWordLength:          2,
		DedupCacheSize:         1000,
		UseReadabilityFallback: true,
		OutputMarkdown:         false,
	}
}

// normalize applies spec.md §3's "precision wins if both set" rule and
// fills in any zero-valued threshold with its default, so a caller-built
// Options{} (all zero values) behaves like DefaultOptions() rather than
// disabling every threshold.
func (o Options) normalize() Options {
	if o.FavorPrecision && o.FavorRecall {
		o.FavorRecall = false
	}
	d := DefaultOptions()
	if o.MinExtractedLen == 0 {
		o.MinExtractedLen = d.MinExtractedLen
	}
	if o.MaxExtractedLen == 0 {
		o.MaxExtractedLen = d.MaxExtractedLen
	}
	if o.MinOutputSize == 0 {
		o.MinOutputSize = d.MinOutputSize
	}
	if o.MinOutputCommSize == 0 {
		o.MinOutputCommSize = d.MinOutputCommSize
	}
	if o.MinScore == 0 {
		o.MinScore = d.MinScore
	}
	if o.MaxLinkDensity == 0 {
		o.MaxLinkDensity = d.MaxLinkDensity
	}
	if o.MinWordLength == 0 {
		o.MinWordLength = d.MinWordLength
	}
	if o.DedupCacheSize == 0 {
		o.DedupCacheSize = d.DedupCacheSize
	}
	return o
}
