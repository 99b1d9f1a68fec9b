package cardhttp

import (
	"fmt"
	"log"
	"mime"
	"net/http"

	"github.com/inkreader/cardfs/internal/models"
	"github.com/inkreader/cardfs/internal/usecase/uploadsvc"
	"github.com/inkreader/cardfs/pkg/cardproto"
	"github.com/inkreader/cardfs/pkg/httperrors"
)

// uploadBatch принимает multipart/form-data и восстанавливает файлы
// потоково, окно за окном: тело запроса целиком в память не поднимается.
func (a *Server) uploadBatch(w http.ResponseWriter, r *http.Request) {
	req, ok := a.requirePath(w, r, "dir", true)
	if !ok {
		return
	}

	boundary, err := requestBoundary(r)
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	sess, err := uploadsvc.NewSession(req.abs, boundary)
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	log.Printf("upload %s: batch into %s", sess.ID(), req.rel)

	res, err := sess.Consume(r.Context(), r.Body, a.chunkSize)
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	log.Printf("upload %s: complete, %d files", sess.ID(), res.Count)
	writeJSON(w, cardproto.UploadBatchResponse{Success: true, Files: res.Files, Count: res.Count})
}

// requestBoundary достаёт boundary-значение из Content-Type запроса.
func requestBoundary(r *http.Request) (string, error) {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return "", fmt.Errorf("%w: Content-Type header required", models.ErrMalformedRequest)
	}

	mediaType, params, err := mime.ParseMediaType(ct)
	if err != nil || mediaType != "multipart/form-data" {
		return "", fmt.Errorf("%w: multipart/form-data expected", models.ErrMalformedRequest)
	}

	boundary := params["boundary"]
	if boundary == "" {
		return "", fmt.Errorf("%w: boundary not found in Content-Type", models.ErrMalformedRequest)
	}

	return boundary, nil
}
