package rest

import (
	"net/http"
	"os"
	"path/filepath"
)

// FrontendHandler serves the static frontend bundle. Unknown paths fall
// back to the index document so client-side routing keeps working after
// a page reload.
type FrontendHandler struct {
	dir   string
	index string
}

func NewFrontendHandler(dir string, index string) *FrontendHandler {
	return &FrontendHandler{dir: dir, index: index}
}

func (h *FrontendHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(h.dir, filepath.Clean("/"+r.URL.Path))

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		http.ServeFile(w, r, filepath.Join(h.dir, h.index))
		return
	}
	http.ServeFile(w, r, path)
}
