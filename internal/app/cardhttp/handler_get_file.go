package cardhttp

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/inkreader/cardfs/internal/models"
	"github.com/inkreader/cardfs/pkg/httperrors"
)

// contentTypes сопоставляет расширения типам, которые понимает веб-клиент
// читалки. Всё прочее отдаётся как octet-stream.
var contentTypes = map[string]string{
	".txt":  "text/plain",
	".html": "text/html",
	".htm":  "text/html",
	".css":  "text/css",
	".js":   "application/javascript",
	".json": "application/json",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".epub": "application/epub+zip",
	".pdf":  "application/pdf",
}

// getFile стримит файл чанками, не поднимая его в память целиком.
func (a *Server) getFile(w http.ResponseWriter, r *http.Request) {
	req, ok := a.requirePath(w, r, "path", true)
	if !ok {
		return
	}

	fi, err := os.Stat(req.abs)
	if err != nil || fi.IsDir() {
		httperrors.Write(w, fmt.Errorf("%w: file %s", models.ErrNotFound, req.rel))
		return
	}

	f, err := os.Open(req.abs)
	if err != nil {
		httperrors.Write(w, fmt.Errorf("%w: file %s", models.ErrNotFound, req.rel))
		return
	}
	defer f.Close()

	ct := contentTypes[strings.ToLower(filepath.Ext(req.rel))]
	if ct == "" {
		ct = "application/octet-stream"
	}
	w.Header().Set("Content-Type", ct)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filepath.Base(req.rel)))

	if _, err := io.Copy(w, f); err != nil {
		log.Printf("get %s: send: %v", req.rel, err)
	}
}
