package templates

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWriteIndexHTML(t *testing.T) {
	SetCommit("abc1234")
	w := httptest.NewRecorder()
	WriteIndexHTML(w, "img/{piece}.png")

	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("unexpected content type %q", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, "build abc1234") {
		t.Fatalf("commit missing from page")
	}
	if !strings.Contains(body, `id="pgn-paste-area"`) {
		t.Fatalf("paste area missing from page")
	}
	if !strings.Contains(body, "sel.hidden = state.games.length === 0") {
		t.Fatalf("game selector is never hidden")
	}
}
