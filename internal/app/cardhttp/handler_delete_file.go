package cardhttp

import (
	"fmt"
	"net/http"
	"os"

	"github.com/inkreader/cardfs/internal/models"
	"github.com/inkreader/cardfs/pkg/cardproto"
	"github.com/inkreader/cardfs/pkg/httperrors"
)

// deleteFile удаляет файл или пустой каталог. Для непустых деревьев есть
// отдельный эндпоинт rmdir.
func (a *Server) deleteFile(w http.ResponseWriter, r *http.Request) {
	req, ok := a.requirePath(w, r, "path", true)
	if !ok {
		return
	}

	if _, err := os.Stat(req.abs); err != nil {
		httperrors.Write(w, fmt.Errorf("%w: %s", models.ErrNotFound, req.rel))
		return
	}

	if err := os.Remove(req.abs); err != nil {
		httperrors.Write(w, fmt.Errorf("delete %s: %w", req.rel, err))
		return
	}

	writeJSON(w, cardproto.OpResponse{Success: true, Path: req.rel})
}
