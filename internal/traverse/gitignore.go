package traverse

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"

	"github.com/temirov/gitree/internal/utils"
)

// GitIgnoreFileName is the name of the per-directory ignore file.
const GitIgnoreFileName = ".gitignore"

const negationPrefix = "!"

// GitignoreContext tracks the .gitignore handling state of one traversal:
// whether matching is enabled, the traversal root the accumulated patterns
// are relative to, and how deep .gitignore files are still honored.
type GitignoreContext struct {
	root    string
	enabled bool
	depth   *int
}

// NewGitignoreContext returns a context rooted at the given absolute path.
func NewGitignoreContext(root string, enabled bool, gitignoreDepth *int) *GitignoreContext {
	return &GitignoreContext{root: root, enabled: enabled, depth: gitignoreDepth}
}

// WithinDepth reports whether .gitignore files found in directoryPath are
// still honored under the configured depth limit.
func (context *GitignoreContext) WithinDepth(directoryPath string) bool {
	if context.depth == nil {
		return true
	}
	return utils.RelativeDepth(directoryPath, context.root) <= *context.depth
}

// Extend folds the .gitignore file of directoryPath (if any, and if within
// depth) into the pattern stack and returns the extended copy. Each pattern
// is re-rooted to the traversal root so that parent patterns keep applying
// while descending; negations keep their leading "!" after re-rooting.
// The input slice is never mutated: sibling subtrees must not observe each
// other's patterns.
func (context *GitignoreContext) Extend(patterns []string, directoryPath string) []string {
	if !context.enabled || !context.WithinDepth(directoryPath) {
		return patterns
	}

	gitignorePath := filepath.Join(directoryPath, GitIgnoreFileName)
	fileInfo, statError := os.Stat(gitignorePath)
	if statError != nil || fileInfo.IsDir() {
		return patterns
	}
	fileHandle, openError := os.Open(gitignorePath)
	if openError != nil {
		// Unreadable ignore files are treated as absent.
		return patterns
	}
	defer fileHandle.Close()

	relativeDirectory := utils.RelativePathOrSelf(directoryPath, context.root)
	pathPrefix := ""
	if relativeDirectory != "." {
		pathPrefix = relativeDirectory + "/"
	}

	extended := append(make([]string, 0, len(patterns)+8), patterns...)
	scanner := bufio.NewScanner(fileHandle)
	for scanner.Scan() {
		line := strings.TrimSpace(strings.ToValidUTF8(scanner.Text(), ""))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		negated := strings.HasPrefix(line, negationPrefix)
		pattern := strings.TrimPrefix(line, negationPrefix)
		pattern = pathPrefix + strings.TrimPrefix(pattern, "/")
		if negated {
			pattern = negationPrefix + pattern
		}
		extended = append(extended, pattern)
	}
	// Scanner errors leave the patterns collected so far in place.

	return extended
}

// Compile builds a matcher from the accumulated pattern stack. Later patterns
// (including negations) win ties, matching gitignore semantics.
func (context *GitignoreContext) Compile(patterns []string) *gitignore.GitIgnore {
	return gitignore.CompileIgnoreLines(patterns...)
}

// IsIgnored reports whether the entry at relativePath is excluded by the
// compiled pattern stack. Directory-only patterns (trailing "/") are honored
// by retesting with a trailing slash.
func (context *GitignoreContext) IsIgnored(relativePath string, isDirectory bool, matcher *gitignore.GitIgnore) bool {
	if !context.enabled || matcher == nil {
		return false
	}
	if matcher.MatchesPath(relativePath) {
		return true
	}
	if isDirectory && matcher.MatchesPath(relativePath+"/") {
		return true
	}
	return false
}
