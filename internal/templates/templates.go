package templates

import (
	"embed"
	"html/template"
	"net/http"
)

//go:embed index.html.gotmpl
var files embed.FS

var page = template.Must(template.New("").Delims("[[", "]]").ParseFS(files, "index.html.gotmpl"))

var commit = "dev"

// SetCommit records the build revision shown in the page footer.
func SetCommit(c string) {
	if c != "" {
		commit = c
	}
}

// PageVars are the values the index page is rendered with.
type PageVars struct {
	Title      string
	Commit     string
	PieceTheme string
}

// WriteIndexHTML serves the viewer page.
func WriteIndexHTML(w http.ResponseWriter, pieceTheme string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	vars := PageVars{Title: "PGNgrid", Commit: commit, PieceTheme: pieceTheme}
	if err := page.ExecuteTemplate(w, "index.html.gotmpl", vars); err != nil {
		http.Error(w, "Template error", http.StatusInternalServerError)
	}
}
