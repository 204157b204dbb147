package quiz

// Options configures ValidateQuestion and ValidateSet. A nil *Options means
// DefaultOptions; on a non-nil Options every zero-valued length or count
// field is filled from the default independently (a per-field merge, not a
// fallback chain). The boolean flags and CustomRules are taken as given.
type Options struct {
	QuestionMinLength    int
	QuestionMaxLength    int
	OptionMinLength      int
	OptionMaxLength      int
	ExplanationMinLength int
	ExplanationMaxLength int
	MinOptions           int
	MaxOptions           int

	RequireExplanation bool
	RequireCategory    bool
	RequireDifficulty  bool

	CustomRules []Rule
}

// DefaultOptions returns the built-in rule set configuration.
func DefaultOptions() Options {
	return Options{
		QuestionMinLength:    5,
		QuestionMaxLength:    500,
		OptionMinLength:      1,
		OptionMaxLength:      200,
		ExplanationMinLength: 10,
		ExplanationMaxLength: 1000,
		MinOptions:           2,
		MaxOptions:           10,
	}
}

// resolve merges caller-supplied options with defaults.
func resolve(opts *Options) Options {
	def := DefaultOptions()
	if opts == nil {
		return def
	}
	o := *opts
	if o.QuestionMinLength == 0 {
		o.QuestionMinLength = def.QuestionMinLength
	}
	if o.QuestionMaxLength == 0 {
		o.QuestionMaxLength = def.QuestionMaxLength
	}
	if o.OptionMinLength == 0 {
		o.OptionMinLength = def.OptionMinLength
	}
	if o.OptionMaxLength == 0 {
		o.OptionMaxLength = def.OptionMaxLength
	}
	if o.ExplanationMinLength == 0 {
		o.ExplanationMinLength = def.ExplanationMinLength
	}
	if o.ExplanationMaxLength == 0 {
		o.ExplanationMaxLength = def.ExplanationMaxLength
	}
	if o.MinOptions == 0 {
		o.MinOptions = def.MinOptions
	}
	if o.MaxOptions == 0 {
		o.MaxOptions = def.MaxOptions
	}
	return o
}
