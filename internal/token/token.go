package token

import (
	"os"
	"strings"
)

// Reader yields the stored authorization token for outgoing catalog
// requests.
type Reader interface {
	Token() string
}

// FileStore reads the token from a single file, the web client's
// persistent storage. The file is never written by this process.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Token returns the stored token string. A missing or unreadable file
// yields the empty string: the token is forwarded as-is without any
// well-formedness check, the backend is the one that rejects it.
func (s *FileStore) Token() string {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
