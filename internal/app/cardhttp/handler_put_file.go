package cardhttp

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/inkreader/cardfs/pkg/cardproto"
	"github.com/inkreader/cardfs/pkg/httperrors"
)

// putFile принимает тело запроса целиком как содержимое одного файла.
// Оборванная загрузка не оставляет мусора: неполный файл удаляется.
func (a *Server) putFile(w http.ResponseWriter, r *http.Request) {
	req, ok := a.requirePath(w, r, "path", true)
	if !ok {
		return
	}

	f, err := os.Create(req.abs)
	if err != nil {
		httperrors.Write(w, fmt.Errorf("create file: %w", err))
		return
	}

	n, err := io.Copy(f, r.Body)
	cerr := f.Close()
	if err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(req.abs)
		httperrors.Write(w, fmt.Errorf("file upload incomplete: %w", err))
		return
	}

	writeJSON(w, cardproto.OpResponse{Success: true, Path: req.rel, Size: n})
}
