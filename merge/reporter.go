package merge

import (
	"log/slog"
)

// Conflict describes one attribute collision resolved by the first-wins
// policy.
type Conflict struct {
	Section   string
	Attribute string
	File      string
	Lost      string
	Kept      string
}

// Reporter receives non-fatal diagnostics raised while merging.
type Reporter interface {
	// Conflict is invoked when two entities declare different values for the
	// same attribute on a shared output node.
	Conflict(c Conflict)
	// DuplicateSource is invoked when an entity was loaded from a document
	// byte-identical to one already merged under another name.
	DuplicateSource(name, otherName, path string)
}

type slogReporter struct {
	logger *slog.Logger
}

// NewReporter returns a Reporter backed by logger; a nil logger uses
// slog.Default.
func NewReporter(logger *slog.Logger) Reporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogReporter{logger: logger}
}

func (r *slogReporter) Conflict(c Conflict) {
	r.logger.Warn("different attributes when merging scenes, the first loaded value prevails",
		"section", c.Section,
		"attribute", c.Attribute,
		"file", c.File,
		"value", c.Lost,
		"merged", c.Kept)
}

func (r *slogReporter) DuplicateSource(name, otherName, path string) {
	r.logger.Warn("entities loaded from identical documents",
		"entity", name,
		"duplicates", otherName,
		"file", path)
}
