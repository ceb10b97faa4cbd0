package web

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newStaticDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>shell</html>"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "assets"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "assets", "app.js"), []byte("console.log(1)"), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(method, target, nil))
	return rr
}

func TestNotFoundWithoutStaticDir(t *testing.T) {
	rr := serve(NotFound(""), http.MethodGet, "/history")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("got %d, want 404", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"message":"Not found"`) {
		t.Fatalf("unexpected body %q", rr.Body.String())
	}
}

func TestNotFoundServesSPA(t *testing.T) {
	h := NotFound(newStaticDir(t))

	cases := []struct {
		method, target string
		wantCode       int
		wantBody       string
	}{
		{http.MethodGet, "/assets/app.js", http.StatusOK, "console.log(1)"},
		{http.MethodGet, "/history", http.StatusOK, "<html>shell</html>"},
		{http.MethodGet, "/", http.StatusOK, "<html>shell</html>"},
		{http.MethodGet, "/assets", http.StatusOK, "<html>shell</html>"},
		{http.MethodGet, "/api/unknown", http.StatusNotFound, "Not found"},
		{http.MethodPost, "/history", http.StatusNotFound, "Not found"},
	}

	for _, tc := range cases {
		rr := serve(h, tc.method, tc.target)
		if rr.Code != tc.wantCode {
			t.Errorf("%s %s: got %d, want %d", tc.method, tc.target, rr.Code, tc.wantCode)
			continue
		}
		if !strings.Contains(rr.Body.String(), tc.wantBody) {
			t.Errorf("%s %s: body %q does not contain %q", tc.method, tc.target, rr.Body.String(), tc.wantBody)
		}
	}
}

func TestRecoverer(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	h := Recoverer(log)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rr := serve(h, http.MethodGet, "/api/reviews")
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("got %d, want 500", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	if strings.TrimSpace(string(body)) != `{"message":"Internal server error"}` {
		t.Fatalf("unexpected body %q", body)
	}
	if !strings.Contains(buf.String(), "boom") {
		t.Fatalf("panic not logged: %q", buf.String())
	}
}
