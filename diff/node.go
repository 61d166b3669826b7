package diff

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
)

// Node is a piece of text that can be diffed with Unified.
type Node interface {
	// SameAs is an optional shortcut to comparing contents, e.g., by
	// comparing hashes or file identities. If no shortcut is possible it
	// should return false and let the caller compare contents.
	SameAs(Node) (bool, error)

	// Content returns the text of the node.
	Content() (string, error)
}

type ByteNode []byte

func (b ByteNode) SameAs(node Node) (bool, error) {
	other, ok := node.(ByteNode)
	if !ok {
		return false, nil
	}
	return bytes.Equal(b, other), nil
}

func (b ByteNode) Content() (string, error) {
	return string(b), nil
}

type StringNode string

func (s StringNode) SameAs(node Node) (bool, error) {
	other, ok := node.(StringNode)
	if !ok {
		return false, nil
	}
	return s == other, nil
}

func (s StringNode) Content() (string, error) {
	return string(s), nil
}

// FileNode is a node whose content is read from the named file on demand.
type FileNode string

// SameAs reports whether both nodes name the same file on disk.
func (f FileNode) SameAs(node Node) (bool, error) {
	other, ok := node.(FileNode)
	if !ok {
		return false, nil
	}
	fi, err := os.Stat(string(f))
	if err != nil {
		return false, errors.Wrapf(err, "FileNode.SameAs %q", string(f))
	}
	ofi, err := os.Stat(string(other))
	if err != nil {
		return false, errors.Wrapf(err, "FileNode.SameAs %q", string(other))
	}
	return os.SameFile(fi, ofi), nil
}

func (f FileNode) Content() (string, error) {
	b, err := os.ReadFile(string(f))
	if err != nil {
		return "", errors.Wrapf(err, "FileNode.Content")
	}
	return string(b), nil
}
