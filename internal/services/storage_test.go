package services

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPublicPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"a.jpg", "uploads/a.jpg"},
		{"uploads/a.jpg", "uploads/a.jpg"},
		{"/uploads/a.jpg", "uploads/a.jpg"},
		{"/var/www/app/uploads/a.jpg", "uploads/a.jpg"},
		{`C:\app\uploads\a.jpg`, "uploads/a.jpg"},
		{`uploads\a.jpg`, "uploads/a.jpg"},
		{"UPLOADS/a.jpg", "uploads/a.jpg"},
		{"/tmp/random/a.jpg", "uploads/a.jpg"},
	}

	for _, tc := range cases {
		if got := PublicPath(tc.in); got != tc.want {
			t.Errorf("PublicPath(%q) = %q, ожидалось %q", tc.in, got, tc.want)
		}
	}
}

func TestUploadsRel(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"uploads/a.jpg", "a.jpg"},
		{"/uploads/a.jpg", "a.jpg"},
		{`uploads\a.jpg`, "a.jpg"},
		{"a.jpg", "a.jpg"},
		{"/var/www/uploads/a.jpg", "a.jpg"},
	}

	for _, tc := range cases {
		if got := UploadsRel(tc.in); got != tc.want {
			t.Errorf("UploadsRel(%q) = %q, ожидалось %q", tc.in, got, tc.want)
		}
	}
}

func TestStorageRemove(t *testing.T) {
	storage, err := NewStorage(t.TempDir())
	if err != nil {
		t.Fatalf("storage: %v", err)
	}

	name := "victim.jpg"
	if err := os.WriteFile(filepath.Join(storage.root, name), []byte("data"), 0o644); err != nil {
		t.Fatalf("запись файла: %v", err)
	}

	storage.Remove("uploads/" + name)
	if _, err := os.Stat(filepath.Join(storage.root, name)); !os.IsNotExist(err) {
		t.Error("файл должен быть удалён")
	}

	// отсутствие файла — не ошибка
	storage.Remove("uploads/ghost.jpg")
}

func TestStorageRemove_Traversal(t *testing.T) {
	base := t.TempDir()
	storage, err := NewStorage(filepath.Join(base, "uploads"))
	if err != nil {
		t.Fatalf("storage: %v", err)
	}

	outside := filepath.Join(base, "secret.txt")
	if err := os.WriteFile(outside, []byte("secret"), 0o644); err != nil {
		t.Fatalf("запись файла: %v", err)
	}

	storage.Remove("uploads/../secret.txt")
	if _, err := os.Stat(outside); err != nil {
		t.Error("файл вне каталога uploads не должен удаляться")
	}
}
