package cardhttp

import (
	"fmt"
	"net/http"
	"os"

	"github.com/inkreader/cardfs/internal/fsops"
	"github.com/inkreader/cardfs/internal/models"
	"github.com/inkreader/cardfs/pkg/cardproto"
	"github.com/inkreader/cardfs/pkg/httperrors"
)

// rmdir рекурсивно удаляет дерево каталога. Корень карты защищён.
func (a *Server) rmdir(w http.ResponseWriter, r *http.Request) {
	req, ok := a.requirePath(w, r, "path", true)
	if !ok {
		return
	}

	if req.rel == "/" {
		httperrors.Write(w, models.ErrRootDelete)
		return
	}

	fi, err := os.Stat(req.abs)
	if err != nil {
		httperrors.Write(w, fmt.Errorf("%w: directory %s", models.ErrNotFound, req.rel))
		return
	}
	if !fi.IsDir() {
		httperrors.Write(w, models.ErrNotDirectory)
		return
	}

	if err := fsops.RemoveTree(a.root, req.abs); err != nil {
		httperrors.Write(w, err)
		return
	}

	writeJSON(w, cardproto.OpResponse{Success: true, Path: req.rel})
}
