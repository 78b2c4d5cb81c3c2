package traverse

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExtendReRootsNestedPatterns(t *testing.T) {
	rootDirectory := t.TempDir()
	nestedDirectory := filepath.Join(rootDirectory, "src")
	if err := os.MkdirAll(nestedDirectory, 0o755); err != nil {
		t.Fatalf("create nested directory: %v", err)
	}
	writeTestFile(t, filepath.Join(nestedDirectory, ".gitignore"), "*.tmp\n!keep.tmp\n/rooted.txt\n# comment\n\n")

	context := NewGitignoreContext(rootDirectory, true, nil)
	patterns := context.Extend(nil, nestedDirectory)

	expected := []string{"src/*.tmp", "!src/keep.tmp", "src/rooted.txt"}
	if len(patterns) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, patterns)
	}
	for patternIndex, expectedPattern := range expected {
		if patterns[patternIndex] != expectedPattern {
			t.Fatalf("expected %v, got %v", expected, patterns)
		}
	}
}

func TestExtendDoesNotMutateInput(t *testing.T) {
	rootDirectory := t.TempDir()
	writeTestFile(t, filepath.Join(rootDirectory, ".gitignore"), "*.log\n")

	context := NewGitignoreContext(rootDirectory, true, nil)
	inherited := []string{"base-pattern"}
	extended := context.Extend(inherited, rootDirectory)

	if len(inherited) != 1 || inherited[0] != "base-pattern" {
		t.Fatalf("input slice was mutated: %v", inherited)
	}
	if len(extended) != 2 || extended[1] != "*.log" {
		t.Fatalf("unexpected extension result: %v", extended)
	}
}

func TestExtendHonorsDepthLimit(t *testing.T) {
	rootDirectory := t.TempDir()
	deepDirectory := filepath.Join(rootDirectory, "a", "b")
	if err := os.MkdirAll(deepDirectory, 0o755); err != nil {
		t.Fatalf("create deep directory: %v", err)
	}
	writeTestFile(t, filepath.Join(deepDirectory, ".gitignore"), "*.log\n")

	limitedContext := NewGitignoreContext(rootDirectory, true, intPointer(1))
	if patterns := limitedContext.Extend(nil, deepDirectory); len(patterns) != 0 {
		t.Fatalf("patterns beyond the depth limit must be ignored, got %v", patterns)
	}

	unlimitedContext := NewGitignoreContext(rootDirectory, true, nil)
	if patterns := unlimitedContext.Extend(nil, deepDirectory); len(patterns) != 1 {
		t.Fatalf("expected one pattern without a depth limit, got %v", patterns)
	}
}

func TestExtendDisabled(t *testing.T) {
	rootDirectory := t.TempDir()
	writeTestFile(t, filepath.Join(rootDirectory, ".gitignore"), "*.log\n")

	context := NewGitignoreContext(rootDirectory, false, nil)
	if patterns := context.Extend(nil, rootDirectory); len(patterns) != 0 {
		t.Fatalf("disabled context must not collect patterns, got %v", patterns)
	}
}

func TestIsIgnoredNegationWins(t *testing.T) {
	rootDirectory := t.TempDir()
	context := NewGitignoreContext(rootDirectory, true, nil)
	matcher := context.Compile([]string{"*.tmp", "!keep.tmp"})

	if !context.IsIgnored("scratch.tmp", false, matcher) {
		t.Fatalf("scratch.tmp should be ignored")
	}
	if context.IsIgnored("keep.tmp", false, matcher) {
		t.Fatalf("keep.tmp is re-included by the negation")
	}
}

func TestIsIgnoredDirectoryOnlyPattern(t *testing.T) {
	rootDirectory := t.TempDir()
	context := NewGitignoreContext(rootDirectory, true, nil)
	matcher := context.Compile([]string{"build/"})

	if !context.IsIgnored("build", true, matcher) {
		t.Fatalf("directory-only pattern should match the directory")
	}
}
