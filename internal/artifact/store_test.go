package artifact

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, dir
}

func TestNew_CreatesLayout(t *testing.T) {
	_, dir := newTestStore(t)

	for _, sub := range []string{"uploads", filepath.Join("outputs", "original"), filepath.Join("outputs", "translated")} {
		info, err := os.Stat(filepath.Join(dir, sub))
		if err != nil {
			t.Errorf("missing %s: %v", sub, err)
			continue
		}
		if !info.IsDir() {
			t.Errorf("%s is not a directory", sub)
		}
	}
}

func TestSaveAndOpen(t *testing.T) {
	s, _ := newTestStore(t)

	name, err := s.Save("extracted text", RoleOriginal, "report.pdf")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if name != "report.txt" {
		t.Errorf("name = %q, want report.txt", name)
	}

	data, err := s.Open(RoleOriginal, name)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if string(data) != "extracted text" {
		t.Errorf("content = %q", data)
	}
}

func TestSave_Overwrite(t *testing.T) {
	s, _ := newTestStore(t)

	if _, err := s.Save("first", RoleOriginal, "a.pdf"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := s.Save("second", RoleOriginal, "a.png"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Both sources map to a.txt; the later write wins.
	data, err := s.Open(RoleOriginal, "a.txt")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q, want second", data)
	}
}

func TestSave_RoleSeparation(t *testing.T) {
	s, _ := newTestStore(t)

	s.Save("original text", RoleOriginal, "a.pdf")
	s.Save("translated text", RoleTranslated, "a.pdf")

	orig, err := s.Open(RoleOriginal, "a.txt")
	if err != nil {
		t.Fatalf("Open original: %v", err)
	}
	trans, err := s.Open(RoleTranslated, "a.txt")
	if err != nil {
		t.Fatalf("Open translated: %v", err)
	}
	if string(orig) != "original text" || string(trans) != "translated text" {
		t.Errorf("roles crossed: original=%q translated=%q", orig, trans)
	}
}

func TestSave_StripsPath(t *testing.T) {
	s, dir := newTestStore(t)

	name, err := s.Save("text", RoleOriginal, "../../evil/../passwd.pdf")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if name != "passwd.txt" {
		t.Errorf("name = %q, want passwd.txt", name)
	}
	if _, err := os.Stat(filepath.Join(dir, "outputs", "original", "passwd.txt")); err != nil {
		t.Errorf("artifact not under the store root: %v", err)
	}
}

func TestOpen_NotFound(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Open(RoleOriginal, "missing.txt")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want fs.ErrNotExist", err)
	}
}

func TestOpen_StripsPath(t *testing.T) {
	s, dir := newTestStore(t)

	secret := filepath.Join(dir, "secret.txt")
	if err := os.WriteFile(secret, []byte("secret"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Open(RoleOriginal, "../../secret.txt"); err == nil {
		t.Error("Open escaped the role directory")
	}
}

func TestSaveUpload(t *testing.T) {
	s, dir := newTestStore(t)

	name, err := s.SaveUpload([]byte{0x25, 0x50, 0x44, 0x46}, "scan.pdf")
	if err != nil {
		t.Fatalf("SaveUpload: %v", err)
	}
	if name != "scan.pdf" {
		t.Errorf("name = %q", name)
	}
	if _, err := os.Stat(filepath.Join(dir, "uploads", "scan.pdf")); err != nil {
		t.Errorf("upload not stored: %v", err)
	}

	if _, err := s.SaveUpload([]byte("x"), "."); err == nil {
		t.Error("expected an error for an empty basename")
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"original", RoleOriginal, true},
		{"translated", RoleTranslated, true},
		{"uploads", "", false},
		{"", "", false},
		{"ORIGINAL", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseRole(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseRole(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
