// Package render turns traversal events into the user-facing projections:
// the ASCII tree, the hierarchical data tree, and the per-depth summary.
package render

import (
	"fmt"
	"io"
	"os"

	"github.com/temirov/gitree/internal/traverse"
)

// Tree drawing glyphs. These are part of the output contract and must not change.
const (
	TreeBranchConnector = "├─ "
	TreeLastConnector   = "└─ "
	TreeVerticalPadding = "│  "
	TreeBlankPadding    = "   "
)

// Icons used in emoji mode. Empty-directory detection failures degrade to the
// normal directory icon.
const (
	FileIcon           = "📄"
	EmptyDirectoryIcon = "📂"
	DirectoryIcon      = "📁"
)

// TruncationMessageFormat renders the synthetic trailing line for entries
// hidden by the per-directory cap.
const TruncationMessageFormat = "... and %d more items"

// TreeRenderer draws the ASCII tree line by line as traversal events arrive.
type TreeRenderer struct {
	writer       io.Writer
	emojiEnabled bool
	prefixStack  []string
}

// NewTreeRenderer creates a renderer writing to the given sink.
func NewTreeRenderer(writer io.Writer, emojiEnabled bool) *TreeRenderer {
	return &TreeRenderer{writer: writer, emojiEnabled: emojiEnabled}
}

// WriteRoot emits the root line that precedes the tree body.
func (renderer *TreeRenderer) WriteRoot(rootName string) error {
	return renderer.writeLine(rootName)
}

// Handler returns the traversal event handler that draws the tree.
func (renderer *TreeRenderer) Handler() traverse.Handler {
	return func(event traverse.Event) error {
		switch event.Kind {
		case traverse.EventEnterDir:
			if writeError := renderer.writeEntry(event); writeError != nil {
				return writeError
			}
			continuation := TreeVerticalPadding
			if event.IsLast {
				continuation = TreeBlankPadding
			}
			renderer.prefixStack = append(renderer.prefixStack, continuation)
			return nil
		case traverse.EventLeaveDir:
			renderer.prefixStack = renderer.prefixStack[:len(renderer.prefixStack)-1]
			return nil
		case traverse.EventFile:
			return renderer.writeEntry(event)
		case traverse.EventTruncated:
			return renderer.writeLine(renderer.prefix() + TreeLastConnector + fmt.Sprintf(TruncationMessageFormat, event.TruncatedCount))
		}
		return nil
	}
}

func (renderer *TreeRenderer) writeEntry(event traverse.Event) error {
	connector := TreeBranchConnector
	if event.IsLast {
		connector = TreeLastConnector
	}
	suffix := ""
	if event.Entry.IsDir {
		suffix = "/"
	}
	if !renderer.emojiEnabled {
		return renderer.writeLine(renderer.prefix() + connector + event.Entry.Name + suffix)
	}
	icon := FileIcon
	if event.Entry.IsDir {
		icon = directoryIcon(event.Entry.Path)
	}
	return renderer.writeLine(renderer.prefix() + connector + icon + " " + event.Entry.Name + suffix)
}

func (renderer *TreeRenderer) prefix() string {
	combined := ""
	for _, segment := range renderer.prefixStack {
		combined += segment
	}
	return combined
}

func (renderer *TreeRenderer) writeLine(line string) error {
	_, writeError := fmt.Fprintln(renderer.writer, line)
	return writeError
}

// directoryIcon distinguishes empty from non-empty directories. Listing
// failures (permission denied) degrade to the non-empty icon.
func directoryIcon(directoryPath string) string {
	entries, readError := os.ReadDir(directoryPath)
	if readError == nil && len(entries) == 0 {
		return EmptyDirectoryIcon
	}
	return DirectoryIcon
}
