package cardhttp

import (
	"fmt"
	"net/http"
	"os"

	"github.com/inkreader/cardfs/internal/models"
	"github.com/inkreader/cardfs/pkg/cardproto"
	"github.com/inkreader/cardfs/pkg/httperrors"
)

// listDir отдаёт содержимое каталога. Пустой параметр path означает корень.
func (a *Server) listDir(w http.ResponseWriter, r *http.Request) {
	req, ok := a.requirePath(w, r, "path", false)
	if !ok {
		return
	}

	entries, err := os.ReadDir(req.abs)
	if err != nil {
		httperrors.Write(w, fmt.Errorf("%w: directory %s", models.ErrNotFound, req.rel))
		return
	}

	items := make([]cardproto.Entry, 0, len(entries))
	for _, e := range entries {
		item := cardproto.Entry{Name: e.Name(), Type: "file"}
		if e.IsDir() {
			item.Type = "directory"
		} else if fi, err := e.Info(); err == nil {
			size := fi.Size()
			item.Size = &size
		}
		items = append(items, item)
	}

	writeJSON(w, cardproto.ListResponse{Path: req.rel, Items: items})
}
