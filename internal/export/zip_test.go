package export

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/temirov/gitree/internal/traverse"
	"github.com/temirov/gitree/internal/types"
)

func writeArchiveFixture(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create parent directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file %s: %v", path, err)
	}
}

func readArchiveNames(t *testing.T, archivePath string) []string {
	t.Helper()
	archiveReader, openError := zip.OpenReader(archivePath)
	if openError != nil {
		t.Fatalf("open archive: %v", openError)
	}
	defer archiveReader.Close()

	var names []string
	for _, archivedFile := range archiveReader.File {
		names = append(names, archivedFile.Name)
	}
	sort.Strings(names)
	return names
}

func TestWriteZipArchiveSingleRoot(t *testing.T) {
	rootDirectory := t.TempDir()
	writeArchiveFixture(t, filepath.Join(rootDirectory, "src", "main.go"), "package main")
	writeArchiveFixture(t, filepath.Join(rootDirectory, "readme.md"), "# readme")

	archivePath := filepath.Join(t.TempDir(), "out.zip")
	zipError := WriteZipArchive(ZipOptions{
		ArchivePath: archivePath,
		Roots:       []types.ValidatedPath{{AbsolutePath: rootDirectory, IsDir: true}},
		Config:      traverse.TraversalConfig{},
	})
	if zipError != nil {
		t.Fatalf("zip failed: %v", zipError)
	}

	names := readArchiveNames(t, archivePath)
	expected := []string{"readme.md", "src/main.go"}
	if len(names) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, names)
	}
	for nameIndex, expectedName := range expected {
		if names[nameIndex] != expectedName {
			t.Fatalf("expected %v, got %v", expected, names)
		}
	}
}

func TestWriteZipArchiveMultiRootPrefixing(t *testing.T) {
	firstRoot := t.TempDir()
	secondRoot := t.TempDir()
	writeArchiveFixture(t, filepath.Join(firstRoot, "a.txt"), "a")
	writeArchiveFixture(t, filepath.Join(secondRoot, "b.txt"), "b")

	archivePath := filepath.Join(t.TempDir(), "multi.zip")
	zipError := WriteZipArchive(ZipOptions{
		ArchivePath: archivePath,
		Roots: []types.ValidatedPath{
			{AbsolutePath: firstRoot, IsDir: true},
			{AbsolutePath: secondRoot, IsDir: true},
		},
		Config: traverse.TraversalConfig{},
	})
	if zipError != nil {
		t.Fatalf("zip failed: %v", zipError)
	}

	names := readArchiveNames(t, archivePath)
	expected := []string{
		filepath.Base(firstRoot) + "/a.txt",
		filepath.Base(secondRoot) + "/b.txt",
	}
	sort.Strings(expected)
	if len(names) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, names)
	}
	for nameIndex, expectedName := range expected {
		if names[nameIndex] != expectedName {
			t.Fatalf("expected %v, got %v", expected, names)
		}
	}
}

func TestWriteZipArchiveSkipsItself(t *testing.T) {
	rootDirectory := t.TempDir()
	writeArchiveFixture(t, filepath.Join(rootDirectory, "data.txt"), "data")
	archivePath := filepath.Join(rootDirectory, "self.zip")

	zipError := WriteZipArchive(ZipOptions{
		ArchivePath: archivePath,
		Roots:       []types.ValidatedPath{{AbsolutePath: rootDirectory, IsDir: true}},
		Config:      traverse.TraversalConfig{},
	})
	if zipError != nil {
		t.Fatalf("zip failed: %v", zipError)
	}

	names := readArchiveNames(t, archivePath)
	for _, name := range names {
		if name == "self.zip" {
			t.Fatalf("archive must not contain itself: %v", names)
		}
	}
	if len(names) != 1 || names[0] != "data.txt" {
		t.Fatalf("expected only data.txt, got %v", names)
	}
}

func TestWriteZipArchiveIgnoresItemLimit(t *testing.T) {
	rootDirectory := t.TempDir()
	fileNames := []string{"a.txt", "b.txt", "c.txt", "d.txt", "e.txt"}
	for _, fileName := range fileNames {
		writeArchiveFixture(t, filepath.Join(rootDirectory, fileName), fileName)
	}

	limit := 2
	archivePath := filepath.Join(t.TempDir(), "capped.zip")
	zipError := WriteZipArchive(ZipOptions{
		ArchivePath: archivePath,
		Roots:       []types.ValidatedPath{{AbsolutePath: rootDirectory, IsDir: true}},
		Config:      traverse.TraversalConfig{MaxItems: &limit},
	})
	if zipError != nil {
		t.Fatalf("zip failed: %v", zipError)
	}

	names := readArchiveNames(t, archivePath)
	if len(names) != len(fileNames) {
		t.Fatalf("archive must include every admitted file, got %v", names)
	}
}

func TestWriteZipArchiveFileRoot(t *testing.T) {
	rootDirectory := t.TempDir()
	filePath := filepath.Join(rootDirectory, "single.txt")
	writeArchiveFixture(t, filePath, "solo")

	archivePath := filepath.Join(t.TempDir(), "file.zip")
	zipError := WriteZipArchive(ZipOptions{
		ArchivePath: archivePath,
		Roots:       []types.ValidatedPath{{AbsolutePath: filePath, IsDir: false}},
		Config:      traverse.TraversalConfig{},
	})
	if zipError != nil {
		t.Fatalf("zip failed: %v", zipError)
	}

	archiveReader, openError := zip.OpenReader(archivePath)
	if openError != nil {
		t.Fatalf("open archive: %v", openError)
	}
	defer archiveReader.Close()
	if len(archiveReader.File) != 1 || archiveReader.File[0].Name != "single.txt" {
		t.Fatalf("expected a single leaf entry, got %v", archiveReader.File)
	}
	entryReader, entryError := archiveReader.File[0].Open()
	if entryError != nil {
		t.Fatalf("open entry: %v", entryError)
	}
	defer entryReader.Close()
	content, readError := io.ReadAll(entryReader)
	if readError != nil {
		t.Fatalf("read entry: %v", readError)
	}
	if string(content) != "solo" {
		t.Fatalf("expected entry content solo, got %q", content)
	}
}
