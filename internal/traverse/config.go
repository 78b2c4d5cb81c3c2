// Package traverse implements the filtered recursive directory traversal engine.
//
// One traversal is driven by a TraversalConfig snapshot and a Walker that
// emits visit events to a caller-supplied handler; the text tree, data tree,
// zip and summary consumers all share this single engine.
package traverse

import "fmt"

const (
	// DefaultMaxItems caps the entries displayed per directory unless overridden.
	DefaultMaxItems = 20
	// MinimumMaxItems is the smallest accepted per-directory item cap.
	MinimumMaxItems = 1
	// MaximumMaxItems is the largest accepted per-directory item cap.
	MaximumMaxItems = 10000
)

// TraversalConfig is the immutable snapshot of all filtering parameters for
// one traversal. It is built once per root and passed down unchanged.
type TraversalConfig struct {
	// MaxDepth limits recursion depth; nil means unlimited.
	MaxDepth *int
	// ShowHidden includes dot-prefixed entries when true.
	ShowHidden bool
	// ExtraExcludes holds additional gitignore-style exclude patterns.
	ExtraExcludes []string
	// ExcludeDepth limits the depth at which ExtraExcludes apply; nil means unlimited.
	ExcludeDepth *int
	// RespectGitignore enables .gitignore discovery and matching.
	RespectGitignore bool
	// GitignoreDepth limits how deep .gitignore files are honored; nil means unlimited.
	GitignoreDepth *int
	// MaxItems caps the entries shown per directory; nil means unlimited.
	MaxItems *int
	// NoFiles hides files entirely, showing only directories.
	NoFiles bool
	// IncludePatterns restricts files to those matching at least one pattern.
	IncludePatterns []string
	// IncludeFileTypes restricts files to the listed extensions (case-insensitive).
	IncludeFileTypes []string
	// FilesFirst inverts the directories-before-files ordering.
	FilesFirst bool
}

// ValidateMaxItems rejects per-directory caps outside the accepted range.
// A nil cap (unlimited) is always valid.
func ValidateMaxItems(maxItems *int) error {
	if maxItems == nil {
		return nil
	}
	if *maxItems < MinimumMaxItems || *maxItems > MaximumMaxItems {
		return fmt.Errorf("max-items must be >= %d and <= %d (or use --no-limit)", MinimumMaxItems, MaximumMaxItems)
	}
	return nil
}

// WithoutItemLimit returns a copy of the configuration with the per-directory
// cap removed. Export and zip consumers must see every filtered entry
// regardless of display truncation.
func (config TraversalConfig) WithoutItemLimit() TraversalConfig {
	result := config
	result.MaxItems = nil
	return result
}
