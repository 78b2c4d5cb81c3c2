// Package types defines every cross-package data structure used by the gitree CLI.
package types

import "encoding/json"

const (
	NodeTypeFile      = "file"
	NodeTypeDirectory = "directory"
	NodeTypeTruncated = "truncated"
)

// ValidatedPath is an absolute input path that already passed existence checks.
type ValidatedPath struct {
	AbsolutePath string
	IsDir        bool
}

// TreeNode is one node of the materialized hierarchical export structure.
// File nodes optionally carry a root-relative path and their contents;
// directory nodes always carry a children array, even when it is empty.
type TreeNode struct {
	Name     string
	Type     string
	Path     string
	Contents *string
	Tokens   int
	Children []*TreeNode
}

// MarshalJSON renders files without a children key and directories with one,
// matching the export contract exactly.
func (node *TreeNode) MarshalJSON() ([]byte, error) {
	if node.Type == NodeTypeDirectory {
		children := node.Children
		if children == nil {
			children = []*TreeNode{}
		}
		return json.Marshal(struct {
			Name     string      `json:"name"`
			Type     string      `json:"type"`
			Tokens   int         `json:"tokens,omitempty"`
			Children []*TreeNode `json:"children"`
		}{node.Name, node.Type, node.Tokens, children})
	}
	return json.Marshal(struct {
		Name     string  `json:"name"`
		Type     string  `json:"type"`
		Path     string  `json:"path,omitempty"`
		Contents *string `json:"contents,omitempty"`
		Tokens   int     `json:"tokens,omitempty"`
	}{node.Name, node.Type, node.Path, node.Contents, node.Tokens})
}
