package merge

// Option customizes a Merger.
type Option func(*Merger)

// WithOutputPath sets the file the merged scene description is written to.
func WithOutputPath(path string) Option {
	return func(m *Merger) {
		if path != "" {
			m.outputPath = path
		}
	}
}

// WithModelName sets the model attribute of the merged root node.
func WithModelName(name string) Option {
	return func(m *Merger) {
		if name != "" {
			m.modelName = name
		}
	}
}

// WithReporter sets the diagnostics sink for non-fatal merge warnings.
func WithReporter(reporter Reporter) Option {
	return func(m *Merger) {
		if reporter != nil {
			m.reporter = reporter
		}
	}
}
