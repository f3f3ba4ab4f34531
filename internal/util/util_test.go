package util

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureDirs(t *testing.T) {
	root := t.TempDir()
	a := filepath.Join(root, "originals")
	b := filepath.Join(root, "posters", "nested")
	if err := EnsureDirs(a, b, a); err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{a, b} {
		if fi, err := os.Stat(p); err != nil || !fi.IsDir() {
			t.Errorf("%s not created: %v", p, err)
		}
	}
}

func TestGetBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(r.Header.Get("Authorization")))
	}))
	defer srv.Close()

	h := http.Header{}
	h.Set("Authorization", "Bearer tok")
	body, err := GetBytes(context.Background(), srv.Client(), srv.URL+"/ok", h)
	if err != nil {
		t.Fatal(err)
	}
	if string(body) != "Bearer tok" {
		t.Errorf("body = %q", body)
	}

	_, err = GetBytes(context.Background(), srv.Client(), srv.URL+"/missing", nil)
	var serr *StatusError
	if !errors.As(err, &serr) || serr.Status != http.StatusNotFound {
		t.Errorf("err = %v, want 404 StatusError", err)
	}
}
