package render

import (
	"fmt"
	"io"
	"os"

	"github.com/temirov/gitree/internal/tokenizer"
	"github.com/temirov/gitree/internal/traverse"
	"github.com/temirov/gitree/internal/types"
	"github.com/temirov/gitree/internal/utils"
)

// DefaultMaxContentBytes caps how much of a file is exported verbatim.
const DefaultMaxContentBytes int64 = 1 << 20

const (
	placeholderBinaryFile      = "[binary file]"
	placeholderPermissionError = "[permission denied]"
	fileTooLargeFormat         = "[file too large: %.2fMB]"
	readErrorFormat            = "[error reading file: %s]"
)

// DataTreeOptions controls how the hierarchical export tree is materialized.
type DataTreeOptions struct {
	// IncludeContents attaches file contents to file nodes.
	IncludeContents bool
	// MaxContentBytes caps attached contents; zero selects DefaultMaxContentBytes.
	MaxContentBytes int64
	// TokenCounter, when non-nil, annotates file nodes with token counts.
	TokenCounter tokenizer.Counter
}

// DataTreeBuilder materializes the TreeNode hierarchy bottom-up from
// traversal events. The resulting tree is owned by the exporting caller and
// never mutated afterwards.
type DataTreeBuilder struct {
	options DataTreeOptions
	root    *types.TreeNode
	stack   []*types.TreeNode
}

// NewDataTreeBuilder creates a builder whose root directory node carries the
// given name.
func NewDataTreeBuilder(rootName string, options DataTreeOptions) *DataTreeBuilder {
	if options.MaxContentBytes <= 0 {
		options.MaxContentBytes = DefaultMaxContentBytes
	}
	rootNode := &types.TreeNode{Name: rootName, Type: types.NodeTypeDirectory, Children: []*types.TreeNode{}}
	return &DataTreeBuilder{
		options: options,
		root:    rootNode,
		stack:   []*types.TreeNode{rootNode},
	}
}

// Root returns the materialized tree. Call it after the walk completed.
func (builder *DataTreeBuilder) Root() *types.TreeNode {
	return builder.root
}

// Handler returns the traversal event handler that builds the tree.
func (builder *DataTreeBuilder) Handler() traverse.Handler {
	return func(event traverse.Event) error {
		switch event.Kind {
		case traverse.EventEnterDir:
			directoryNode := &types.TreeNode{
				Name:     event.Entry.Name,
				Type:     types.NodeTypeDirectory,
				Children: []*types.TreeNode{},
			}
			builder.appendChild(directoryNode)
			builder.stack = append(builder.stack, directoryNode)
		case traverse.EventLeaveDir:
			builder.stack = builder.stack[:len(builder.stack)-1]
		case traverse.EventFile:
			fileNode := &types.TreeNode{
				Name: event.Entry.Name,
				Type: types.NodeTypeFile,
				Path: event.RelativePath,
			}
			if builder.options.IncludeContents {
				contents := ReadFileContents(event.Entry.Path, builder.options.MaxContentBytes)
				fileNode.Contents = &contents
			}
			if builder.options.TokenCounter != nil {
				if countResult, countError := tokenizer.CountFile(builder.options.TokenCounter, event.Entry.Path); countError == nil && countResult.Counted {
					fileNode.Tokens = countResult.Tokens
				}
			}
			builder.appendChild(fileNode)
		case traverse.EventTruncated:
			builder.appendChild(&types.TreeNode{
				Name: fmt.Sprintf(TruncationMessageFormat, event.TruncatedCount),
				Type: types.NodeTypeTruncated,
			})
		}
		return nil
	}
}

func (builder *DataTreeBuilder) appendChild(childNode *types.TreeNode) {
	parentNode := builder.stack[len(builder.stack)-1]
	parentNode.Children = append(parentNode.Children, childNode)
}

// ReadFileContents reads a file for export, degrading to a placeholder string
// for oversized, binary, or unreadable files. It never returns an error.
func ReadFileContents(filePath string, maxContentBytes int64) string {
	fileInfo, statError := os.Stat(filePath)
	if statError != nil {
		if os.IsPermission(statError) {
			return placeholderPermissionError
		}
		return fmt.Sprintf(readErrorFormat, statError)
	}
	if fileInfo.Size() > maxContentBytes {
		return fmt.Sprintf(fileTooLargeFormat, float64(fileInfo.Size())/(1024*1024))
	}
	if utils.IsFileBinary(filePath) {
		return placeholderBinaryFile
	}
	fileHandle, openError := os.Open(filePath)
	if openError != nil {
		if os.IsPermission(openError) {
			return placeholderPermissionError
		}
		return fmt.Sprintf(readErrorFormat, openError)
	}
	defer fileHandle.Close()
	contents, readError := io.ReadAll(fileHandle)
	if readError != nil {
		return fmt.Sprintf(readErrorFormat, readError)
	}
	return string(contents)
}
