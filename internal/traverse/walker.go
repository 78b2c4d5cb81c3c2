package traverse

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/temirov/gitree/internal/utils"
)

// EventKind identifies the traversal event delivered to the visit handler.
type EventKind int

const (
	// EventEnterDir announces a visible directory before its children.
	EventEnterDir EventKind = iota
	// EventFile announces a visible file.
	EventFile
	// EventLeaveDir closes the directory opened by the matching EventEnterDir.
	EventLeaveDir
	// EventTruncated reports entries hidden by the per-directory cap. It is
	// always the last event within its directory's block.
	EventTruncated
)

// Event is one visit delivered by the Walker. Depth is the depth of the
// directory whose listing produced the entry (children of the root have
// depth zero). IsLast is true for the final visible entry of a directory,
// accounting for a pending truncation marker.
type Event struct {
	Kind           EventKind
	Entry          Entry
	RelativePath   string
	Depth          int
	IsLast         bool
	TruncatedCount int
}

// Handler consumes traversal events. Returning an error aborts the walk.
type Handler func(Event) error

// Options configures one walk.
type Options struct {
	// Root is the absolute path the traversal starts from.
	Root string
	// Config is the filter snapshot used for every directory.
	Config TraversalConfig
	// Whitelist, when non-nil, restricts output to the listed absolute file
	// paths and their ancestor directories.
	Whitelist map[string]struct{}
}

// Walker drives the recursive descent shared by the text-tree, data-tree,
// zip and summary consumers. The per-entry handler is the only thing that
// differs between them.
type Walker struct {
	options   Options
	filter    *EntryFilter
	gitignore *GitignoreContext
	handler   Handler
}

// NewWalker prepares a walker for the given root and configuration.
func NewWalker(options Options) *Walker {
	gitignoreContext := NewGitignoreContext(options.Root, options.Config.RespectGitignore, options.Config.GitignoreDepth)
	return &Walker{
		options:   options,
		filter:    NewEntryFilter(options.Config, options.Root, gitignoreContext),
		gitignore: gitignoreContext,
	}
}

// Walk traverses the root, invoking handler for every visible entry in
// display order. A root that is not a directory is reported as a single
// leaf entry with no recursion.
func (walker *Walker) Walk(rootIsDirectory bool, handler Handler) error {
	if handler == nil {
		return fmt.Errorf("traverse: walk handler is nil")
	}
	walker.handler = handler

	if !rootIsDirectory {
		return handler(Event{
			Kind:         EventFile,
			Entry:        Entry{Path: walker.options.Root, Name: filepath.Base(walker.options.Root)},
			RelativePath: filepath.Base(walker.options.Root),
			IsLast:       true,
		})
	}

	return walker.walkDirectory(walker.options.Root, 0, nil)
}

// walkDirectory visits the children of directoryPath. Each recursive call
// receives its own extension of the inherited pattern stack, so patterns
// collected in one subtree never leak into a sibling subtree.
func (walker *Walker) walkDirectory(directoryPath string, currentDepth int, inheritedPatterns []string) error {
	if walker.options.Config.MaxDepth != nil && currentDepth >= *walker.options.Config.MaxDepth {
		return nil
	}

	patterns := walker.gitignore.Extend(inheritedPatterns, directoryPath)
	patternMatcher := walker.gitignore.Compile(patterns)

	entries, truncatedCount := walker.filter.ListEntries(directoryPath, patternMatcher)
	entries = walker.pruneByWhitelist(entries)

	for entryIndex, entry := range entries {
		isLast := entryIndex == len(entries)-1 && truncatedCount == 0
		event := Event{
			Kind:         EventFile,
			Entry:        entry,
			RelativePath: utils.RelativePathOrSelf(entry.Path, walker.options.Root),
			Depth:        currentDepth,
			IsLast:       isLast,
		}
		if entry.IsDir {
			event.Kind = EventEnterDir
		}
		if handlerError := walker.handler(event); handlerError != nil {
			return handlerError
		}
		if entry.IsDir {
			if walkError := walker.walkDirectory(entry.Path, currentDepth+1, patterns); walkError != nil {
				return walkError
			}
			leaveEvent := event
			leaveEvent.Kind = EventLeaveDir
			if handlerError := walker.handler(leaveEvent); handlerError != nil {
				return handlerError
			}
		}
	}

	if truncatedCount > 0 {
		return walker.handler(Event{
			Kind:           EventTruncated,
			Depth:          currentDepth,
			IsLast:         true,
			TruncatedCount: truncatedCount,
		})
	}

	return nil
}

// pruneByWhitelist removes entries not covered by the active whitelist:
// files must be members, directories must be an ancestor of at least one
// whitelisted path.
func (walker *Walker) pruneByWhitelist(entries []Entry) []Entry {
	if walker.options.Whitelist == nil {
		return entries
	}
	pruned := entries[:0]
	for _, entry := range entries {
		if entry.IsDir {
			if walker.whitelistCoversDirectory(entry.Path) {
				pruned = append(pruned, entry)
			}
			continue
		}
		if _, whitelisted := walker.options.Whitelist[entry.Path]; whitelisted {
			pruned = append(pruned, entry)
		}
	}
	return pruned
}

func (walker *Walker) whitelistCoversDirectory(directoryPath string) bool {
	for whitelistedPath := range walker.options.Whitelist {
		if strings.HasPrefix(whitelistedPath, directoryPath) {
			return true
		}
	}
	return false
}
