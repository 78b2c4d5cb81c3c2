package traverse

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"

	"github.com/temirov/gitree/internal/utils"
)

// Entry is a filesystem node reached during traversal. Entries are transient
// traversal artifacts and are never mutated.
type Entry struct {
	Path  string
	Name  string
	IsDir bool
}

// EntryFilter produces the ordered, filtered, possibly truncated subset of a
// directory's children according to one TraversalConfig. Extra-exclude and
// include matchers are compiled once per traversal.
type EntryFilter struct {
	config         TraversalConfig
	root           string
	gitignore      *GitignoreContext
	excludeMatcher *gitignore.GitIgnore
	includeMatcher *gitignore.GitIgnore
}

// NewEntryFilter builds a filter for one traversal rooted at the given
// absolute path.
func NewEntryFilter(config TraversalConfig, root string, gitignoreContext *GitignoreContext) *EntryFilter {
	entryFilter := &EntryFilter{config: config, root: root, gitignore: gitignoreContext}
	if len(config.ExtraExcludes) > 0 {
		entryFilter.excludeMatcher = gitignore.CompileIgnoreLines(config.ExtraExcludes...)
	}
	if len(config.IncludePatterns) > 0 {
		entryFilter.includeMatcher = gitignore.CompileIgnoreLines(config.IncludePatterns...)
	}
	return entryFilter
}

// ListEntries lists the visible children of directoryPath in display order
// and reports how many filtered entries were cut by the per-directory cap.
// A directory that cannot be read is treated as empty.
func (entryFilter *EntryFilter) ListEntries(directoryPath string, patternMatcher *gitignore.GitIgnore) ([]Entry, int) {
	directoryEntries, readError := os.ReadDir(directoryPath)
	if readError != nil {
		return nil, 0
	}

	var visible []Entry
	for _, directoryEntry := range directoryEntries {
		entry := Entry{
			Path:  filepath.Join(directoryPath, directoryEntry.Name()),
			Name:  directoryEntry.Name(),
			IsDir: directoryEntry.IsDir(),
		}
		if entryFilter.admits(entry, patternMatcher) {
			visible = append(visible, entry)
		}
	}

	sort.SliceStable(visible, func(firstIndex, secondIndex int) bool {
		first, second := visible[firstIndex], visible[secondIndex]
		if first.IsDir != second.IsDir {
			if entryFilter.config.FilesFirst {
				return !first.IsDir
			}
			return first.IsDir
		}
		return strings.ToLower(first.Name) < strings.ToLower(second.Name)
	})

	truncatedCount := 0
	if entryFilter.config.MaxItems != nil && len(visible) > *entryFilter.config.MaxItems {
		truncatedCount = len(visible) - *entryFilter.config.MaxItems
		visible = visible[:*entryFilter.config.MaxItems]
	}

	return visible, truncatedCount
}

// admits applies the exclusion and inclusion stages in their fixed order.
func (entryFilter *EntryFilter) admits(entry Entry, patternMatcher *gitignore.GitIgnore) bool {
	if !entryFilter.config.ShowHidden && strings.HasPrefix(entry.Name, ".") {
		return false
	}

	relativePath := utils.RelativePathOrSelf(entry.Path, entryFilter.root)

	// Directories always pass the gitignore stage so that deeper whitelisted
	// or explicitly included content can still be reached. Files named by an
	// explicit include pattern or file type override the gitignore verdict.
	if !entry.IsDir && !entryFilter.isExplicitlyIncluded(entry, relativePath) &&
		entryFilter.gitignore.IsIgnored(relativePath, false, patternMatcher) {
		return false
	}

	if entryFilter.matchesExtraExclude(entry, relativePath) {
		return false
	}

	if entryFilter.config.NoFiles && !entry.IsDir {
		return false
	}

	return entryFilter.matchesInclusion(entry, relativePath)
}

// matchesExtraExclude tests the user-supplied exclude patterns, honoring the
// optional exclude depth limit.
func (entryFilter *EntryFilter) matchesExtraExclude(entry Entry, relativePath string) bool {
	if entryFilter.excludeMatcher == nil {
		return false
	}
	if entryFilter.config.ExcludeDepth != nil {
		if utils.RelativeDepth(entry.Path, entryFilter.root) > *entryFilter.config.ExcludeDepth {
			return false
		}
	}
	if entryFilter.excludeMatcher.MatchesPath(relativePath) {
		return true
	}
	if entry.IsDir && entryFilter.excludeMatcher.MatchesPath(relativePath+"/") {
		return true
	}
	return false
}

// isExplicitlyIncluded reports whether a file is named by one of the
// configured include patterns or file types.
func (entryFilter *EntryFilter) isExplicitlyIncluded(entry Entry, relativePath string) bool {
	if entryFilter.includeMatcher != nil && entryFilter.includeMatcher.MatchesPath(relativePath) {
		return true
	}
	entryExtension := strings.ToLower(filepath.Ext(entry.Name))
	for _, fileType := range entryFilter.config.IncludeFileTypes {
		if entryExtension == utils.NormalizeExtension(fileType) {
			return true
		}
	}
	return false
}

// matchesInclusion applies the include pattern and file-type filters. With no
// inclusion filters configured every surviving entry passes; directories
// always pass so nested matching files stay reachable.
func (entryFilter *EntryFilter) matchesInclusion(entry Entry, relativePath string) bool {
	if entryFilter.includeMatcher == nil && len(entryFilter.config.IncludeFileTypes) == 0 {
		return true
	}
	if entry.IsDir {
		return true
	}
	return entryFilter.isExplicitlyIncluded(entry, relativePath)
}
