package export

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/temirov/gitree/internal/traverse"
	"github.com/temirov/gitree/internal/types"
)

const (
	zipSelfInclusionWarning = "skipping archive file found inside the archived tree"
	errCreateArchive        = "creating archive %s: %w"
	errArchiveEntry         = "archiving %s: %w"
)

// ZipOptions controls archive creation for one or more roots. Whitelists is
// keyed by root absolute path; a missing or nil entry leaves that root
// unrestricted.
type ZipOptions struct {
	ArchivePath string
	Roots       []types.ValidatedPath
	Config      traverse.TraversalConfig
	Whitelists  map[string]map[string]struct{}
	Logger      *zap.Logger
}

// WriteZipArchive walks every root with the item limit lifted and writes the
// admitted files into a zip archive. When the archive itself sits inside an
// archived tree it is skipped with a warning rather than zipped into itself.
func WriteZipArchive(options ZipOptions) error {
	archiveFile, createError := os.Create(options.ArchivePath)
	if createError != nil {
		return fmt.Errorf(errCreateArchive, options.ArchivePath, createError)
	}
	defer archiveFile.Close()

	archiveWriter := zip.NewWriter(archiveFile)
	defer archiveWriter.Close()

	resolvedArchivePath, resolveError := filepath.Abs(options.ArchivePath)
	if resolveError != nil {
		resolvedArchivePath = options.ArchivePath
	}

	archiveConfig := options.Config.WithoutItemLimit()
	prefixWithRootName := len(options.Roots) > 1

	for _, root := range options.Roots {
		if !root.IsDir {
			if writeError := writeArchiveEntry(archiveWriter, root.AbsolutePath, filepath.Base(root.AbsolutePath)); writeError != nil {
				return writeError
			}
			continue
		}

		rootBaseName := filepath.Base(root.AbsolutePath)
		walker := traverse.NewWalker(traverse.Options{
			Root:      root.AbsolutePath,
			Config:    archiveConfig,
			Whitelist: options.Whitelists[root.AbsolutePath],
		})

		walkError := walker.Walk(root.IsDir, func(event traverse.Event) error {
			if event.Kind != traverse.EventFile {
				return nil
			}
			if event.Entry.Path == resolvedArchivePath {
				if options.Logger != nil {
					options.Logger.Warn(zipSelfInclusionWarning, zap.String("path", event.Entry.Path))
				}
				return nil
			}
			archiveName := event.RelativePath
			if prefixWithRootName {
				archiveName = rootBaseName + "/" + event.RelativePath
			}
			return writeArchiveEntry(archiveWriter, event.Entry.Path, archiveName)
		})
		if walkError != nil {
			return walkError
		}
	}

	return nil
}

func writeArchiveEntry(archiveWriter *zip.Writer, sourcePath string, archiveName string) error {
	sourceFile, openError := os.Open(sourcePath)
	if openError != nil {
		return fmt.Errorf(errArchiveEntry, sourcePath, openError)
	}
	defer sourceFile.Close()

	entryWriter, entryError := archiveWriter.Create(archiveName)
	if entryError != nil {
		return fmt.Errorf(errArchiveEntry, archiveName, entryError)
	}
	if _, copyError := io.Copy(entryWriter, sourceFile); copyError != nil {
		return fmt.Errorf(errArchiveEntry, archiveName, copyError)
	}
	return nil
}
