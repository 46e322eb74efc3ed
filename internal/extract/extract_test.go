package extract

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestTextEmptyList(t *testing.T) {
	_, err := New("").Text(context.Background(), nil)
	if err == nil {
		t.Error("expected error for empty file list")
	}
}

func TestTextMissingFile(t *testing.T) {
	_, err := New("").Text(context.Background(), []string{"/does/not/exist.txt"})
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestTextPlainFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "first note\n")
	b := writeFile(t, dir, "b.md", "# second note\n")

	got, err := New("").Text(context.Background(), []string{a, b})
	if err != nil {
		t.Fatalf("text: %v", err)
	}
	want := "first note\n\n# second note"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTextAllEmptyFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "   \n")

	_, err := New("").Text(context.Background(), []string{a})
	if err == nil {
		t.Error("expected error when no content extracted")
	}
}

func TestTextDocumentParse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer key" {
			t.Errorf("unexpected auth header %q", got)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if _, _, err := r.FormFile("document"); err != nil {
			t.Errorf("missing document part: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"content": map[string]string{"text": "scanned text"},
		})
	}))
	defer srv.Close()

	e := New("key")
	e.parseURL = srv.URL

	dir := t.TempDir()
	pdf := writeFile(t, dir, "doc.pdf", "%PDF-1.4 fake")

	got, err := e.Text(context.Background(), []string{pdf})
	if err != nil {
		t.Fatalf("text: %v", err)
	}
	if got != "scanned text" {
		t.Errorf("got %q", got)
	}
}

func TestTextDocumentParseWithoutKey(t *testing.T) {
	dir := t.TempDir()
	pdf := writeFile(t, dir, "doc.pdf", "%PDF-1.4 fake")

	_, err := New("").Text(context.Background(), []string{pdf})
	if err == nil {
		t.Error("expected error when parsing a PDF without an API key")
	}
}
