package cardhttp

import (
	"fmt"
	"net/http"

	"github.com/inkreader/cardfs/internal/fsops"
	"github.com/inkreader/cardfs/pkg/cardproto"
	"github.com/inkreader/cardfs/pkg/httperrors"
)

// mkdir рекурсивно создаёт каталог; существующие сегменты не ошибка.
func (a *Server) mkdir(w http.ResponseWriter, r *http.Request) {
	req, ok := a.requirePath(w, r, "path", true)
	if !ok {
		return
	}

	if err := fsops.EnsureDir(req.abs); err != nil {
		httperrors.Write(w, fmt.Errorf("create directory: %w", err))
		return
	}

	writeJSON(w, cardproto.OpResponse{Success: true, Path: req.rel})
}
