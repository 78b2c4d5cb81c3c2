// Package export serializes the materialized data tree to JSON, text,
// markdown, and zip archives.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/temirov/gitree/internal/render"
	"github.com/temirov/gitree/internal/types"
	"github.com/temirov/gitree/internal/utils"
)

const (
	sectionRuler    = "================================================================================"
	fileRuler       = "--------------------------------------------------------------------------------"
	outputFileMode  = 0o644
	errWriteFormat  = "writing %s export to %s: %w"
	jsonIndent      = "  "
	markdownHeading = "## File Contents"
)

// exportedFile pairs a file node's display path with its contents.
type exportedFile struct {
	path     string
	name     string
	contents string
}

// FormatJSON renders the data tree as indented JSON.
func FormatJSON(treeData *types.TreeNode) (string, error) {
	encoded, encodeError := json.MarshalIndent(treeData, "", jsonIndent)
	if encodeError != nil {
		return "", encodeError
	}
	return string(encoded), nil
}

// FormatTextTree renders the data tree as an ASCII tree, optionally followed
// by a FILE CONTENTS section listing every exported file.
func FormatTextTree(treeData *types.TreeNode, emojiEnabled bool, includeContents bool) string {
	lines, exportedFiles := flattenTree(treeData, emojiEnabled, includeContents)
	treeOutput := strings.Join(lines, "\n")

	if includeContents && len(exportedFiles) > 0 {
		var builder strings.Builder
		builder.WriteString(treeOutput)
		builder.WriteString("\n\n" + sectionRuler + "\n")
		builder.WriteString("FILE CONTENTS\n")
		builder.WriteString(sectionRuler + "\n\n")
		for _, file := range exportedFiles {
			builder.WriteString("File: " + file.path + "\n")
			builder.WriteString(fileRuler + "\n")
			builder.WriteString(file.contents)
			builder.WriteString("\n" + fileRuler + "\n\n")
		}
		return builder.String()
	}

	return treeOutput
}

// FormatMarkdownTree renders the data tree inside a fenced code block,
// optionally followed by per-file fenced blocks with language hints.
func FormatMarkdownTree(treeData *types.TreeNode, emojiEnabled bool, includeContents bool) string {
	lines, exportedFiles := flattenTree(treeData, emojiEnabled, includeContents)

	var builder strings.Builder
	builder.WriteString("```\n")
	builder.WriteString(strings.Join(lines, "\n"))
	builder.WriteString("\n```\n")

	if includeContents && len(exportedFiles) > 0 {
		builder.WriteString("\n" + markdownHeading + "\n\n")
		for _, file := range exportedFiles {
			languageHint := utils.LanguageHint(file.name)
			builder.WriteString("### " + file.path + "\n\n")
			builder.WriteString("```" + languageHint + "\n")
			builder.WriteString(file.contents)
			builder.WriteString("\n```\n\n")
		}
	}

	return builder.String()
}

// flattenTree converts the data tree into display lines and collects the
// files whose contents are attached.
func flattenTree(treeData *types.TreeNode, emojiEnabled bool, collectContents bool) ([]string, []exportedFile) {
	lines := []string{treeData.Name}
	var exportedFiles []exportedFile

	var walkChildren func(node *types.TreeNode, prefix string)
	walkChildren = func(node *types.TreeNode, prefix string) {
		children := node.Children
		for childIndex, child := range children {
			isLast := childIndex == len(children)-1
			connector := render.TreeBranchConnector
			if isLast {
				connector = render.TreeLastConnector
			}

			if child.Type == types.NodeTypeTruncated {
				lines = append(lines, prefix+connector+child.Name)
				continue
			}

			if emojiEnabled {
				icon := render.FileIcon
				if child.Type == types.NodeTypeDirectory {
					icon = render.DirectoryIcon
				}
				lines = append(lines, prefix+connector+icon+" "+child.Name)
			} else {
				suffix := ""
				if child.Type == types.NodeTypeDirectory {
					suffix = "/"
				}
				lines = append(lines, prefix+connector+child.Name+suffix)
			}

			if collectContents && child.Type == types.NodeTypeFile && child.Contents != nil {
				displayPath := child.Path
				if displayPath == "" {
					displayPath = child.Name
				}
				exportedFiles = append(exportedFiles, exportedFile{path: displayPath, name: child.Name, contents: *child.Contents})
			}

			if child.Type == types.NodeTypeDirectory {
				continuation := render.TreeVerticalPadding
				if isLast {
					continuation = render.TreeBlankPadding
				}
				walkChildren(child, prefix+continuation)
			}
		}
	}

	walkChildren(treeData, "")
	return lines, exportedFiles
}

// Targets names the export files requested for one run. Empty paths are
// skipped.
type Targets struct {
	JSONPath     string
	TextPath     string
	MarkdownPath string
}

// WriteFiles renders and writes every requested export concurrently. The
// first failure is reported; the in-memory tree is left untouched so callers
// can retry or surface partial results.
func WriteFiles(treeData *types.TreeNode, targets Targets, emojiEnabled bool, includeContents bool) error {
	var group errgroup.Group

	if targets.JSONPath != "" {
		group.Go(func() error {
			content, formatError := FormatJSON(treeData)
			if formatError != nil {
				return fmt.Errorf(errWriteFormat, "json", targets.JSONPath, formatError)
			}
			if writeError := os.WriteFile(targets.JSONPath, []byte(content), outputFileMode); writeError != nil {
				return fmt.Errorf(errWriteFormat, "json", targets.JSONPath, writeError)
			}
			return nil
		})
	}

	if targets.TextPath != "" {
		group.Go(func() error {
			content := FormatTextTree(treeData, emojiEnabled, includeContents)
			if writeError := os.WriteFile(targets.TextPath, []byte(content), outputFileMode); writeError != nil {
				return fmt.Errorf(errWriteFormat, "text", targets.TextPath, writeError)
			}
			return nil
		})
	}

	if targets.MarkdownPath != "" {
		group.Go(func() error {
			content := FormatMarkdownTree(treeData, emojiEnabled, includeContents)
			if writeError := os.WriteFile(targets.MarkdownPath, []byte(content), outputFileMode); writeError != nil {
				return fmt.Errorf(errWriteFormat, "markdown", targets.MarkdownPath, writeError)
			}
			return nil
		})
	}

	return group.Wait()
}
