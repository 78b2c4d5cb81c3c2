package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/temirov/gitree/internal/traverse"
)

func intPointer(value int) *int {
	pointer := value
	return &pointer
}

func writeTestFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create parent directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file %s: %v", path, err)
	}
}

func renderTree(t *testing.T, root string, config traverse.TraversalConfig, emojiEnabled bool) string {
	t.Helper()
	var output strings.Builder
	renderer := NewTreeRenderer(&output, emojiEnabled)
	if rootError := renderer.WriteRoot(filepath.Base(root)); rootError != nil {
		t.Fatalf("write root: %v", rootError)
	}
	walker := traverse.NewWalker(traverse.Options{Root: root, Config: config})
	if walkError := walker.Walk(true, renderer.Handler()); walkError != nil {
		t.Fatalf("walk failed: %v", walkError)
	}
	return output.String()
}

func TestTreeRendererConnectors(t *testing.T) {
	rootDirectory := t.TempDir()
	writeTestFile(t, filepath.Join(rootDirectory, "sub", "inner.txt"), "")
	writeTestFile(t, filepath.Join(rootDirectory, "alpha.txt"), "")
	writeTestFile(t, filepath.Join(rootDirectory, "beta.txt"), "")

	rendered := renderTree(t, rootDirectory, traverse.TraversalConfig{}, false)

	expected := filepath.Base(rootDirectory) + "\n" +
		"├─ sub/\n" +
		"│  └─ inner.txt\n" +
		"├─ alpha.txt\n" +
		"└─ beta.txt\n"
	if rendered != expected {
		t.Fatalf("expected:\n%s\ngot:\n%s", expected, rendered)
	}
}

func TestTreeRendererTruncationLine(t *testing.T) {
	rootDirectory := t.TempDir()
	for _, fileName := range []string{"a.txt", "b.txt", "c.txt", "d.txt", "e.txt"} {
		writeTestFile(t, filepath.Join(rootDirectory, fileName), "")
	}

	rendered := renderTree(t, rootDirectory, traverse.TraversalConfig{MaxItems: intPointer(2)}, false)

	expected := filepath.Base(rootDirectory) + "\n" +
		"├─ a.txt\n" +
		"├─ b.txt\n" +
		"└─ ... and 3 more items\n"
	if rendered != expected {
		t.Fatalf("expected:\n%s\ngot:\n%s", expected, rendered)
	}
}

func TestTreeRendererBlankPaddingAfterLastDirectory(t *testing.T) {
	rootDirectory := t.TempDir()
	writeTestFile(t, filepath.Join(rootDirectory, "last", "nested.txt"), "")

	rendered := renderTree(t, rootDirectory, traverse.TraversalConfig{}, false)

	expected := filepath.Base(rootDirectory) + "\n" +
		"└─ last/\n" +
		"   └─ nested.txt\n"
	if rendered != expected {
		t.Fatalf("expected:\n%s\ngot:\n%s", expected, rendered)
	}
}

func TestTreeRendererEmojiIcons(t *testing.T) {
	rootDirectory := t.TempDir()
	writeTestFile(t, filepath.Join(rootDirectory, "full", "inner.txt"), "")
	if err := os.MkdirAll(filepath.Join(rootDirectory, "empty"), 0o755); err != nil {
		t.Fatalf("create empty directory: %v", err)
	}
	writeTestFile(t, filepath.Join(rootDirectory, "file.txt"), "")

	rendered := renderTree(t, rootDirectory, traverse.TraversalConfig{}, true)

	if !strings.Contains(rendered, EmptyDirectoryIcon+" empty/") {
		t.Fatalf("empty directory icon missing:\n%s", rendered)
	}
	if !strings.Contains(rendered, DirectoryIcon+" full/") {
		t.Fatalf("directory icon missing:\n%s", rendered)
	}
	if !strings.Contains(rendered, FileIcon+" file.txt") {
		t.Fatalf("file icon missing:\n%s", rendered)
	}
}
