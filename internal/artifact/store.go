// Package artifact persists original and translated text outputs, plus raw
// uploaded files, under a fixed on-disk layout.
package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Role names a logically separate artifact namespace. An artifact name is
// unique within its role, not globally.
type Role string

// The two folder roles.
const (
	RoleOriginal   Role = "original"
	RoleTranslated Role = "translated"
)

// ParseRole maps a URL path segment onto a Role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleOriginal:
		return RoleOriginal, true
	case RoleTranslated:
		return RoleTranslated, true
	}
	return "", false
}

// Store writes and serves artifacts below a single root directory:
// uploads/ holds raw incoming files, outputs/original and outputs/translated
// hold the .txt artifacts. Names derive from the source filename, so two
// uploads sharing a base filename overwrite each other's artifact.
type Store struct {
	root string
}

// New creates the on-disk layout rooted at dir.
func New(dir string) (*Store, error) {
	s := &Store{root: dir}
	for _, d := range []string{s.uploadDir(), s.dir(RoleOriginal), s.dir(RoleTranslated)} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return nil, fmt.Errorf("create %s: %w", d, err)
		}
	}
	return s, nil
}

// Save writes text under the role's folder as <base>.txt, where base is the
// source filename stripped of its extension. An existing artifact with the
// same name is overwritten. The returned name is the bare filename used by
// the download endpoint, never a path.
func (s *Store) Save(text string, role Role, filename string) (string, error) {
	base := filepath.Base(filename)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + ".txt"
	if err := os.WriteFile(filepath.Join(s.dir(role), name), []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("write artifact %s: %w", name, err)
	}
	return name, nil
}

// SaveUpload keeps a copy of the raw incoming file under uploads/.
func (s *Store) SaveUpload(data []byte, filename string) (string, error) {
	name := filepath.Base(filename)
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("invalid filename %q", filename)
	}
	if err := os.WriteFile(filepath.Join(s.uploadDir(), name), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload %s: %w", name, err)
	}
	return name, nil
}

// Open returns an artifact's bytes. A missing artifact is reported as
// fs.ErrNotExist via errors.Is.
func (s *Store) Open(role Role, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir(role), filepath.Base(name)))
	if err != nil {
		return nil, fmt.Errorf("open artifact %s/%s: %w", role, name, err)
	}
	return data, nil
}

func (s *Store) dir(role Role) string {
	return filepath.Join(s.root, "outputs", string(role))
}

func (s *Store) uploadDir() string {
	return filepath.Join(s.root, "uploads")
}
