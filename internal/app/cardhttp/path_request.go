package cardhttp

import (
	"fmt"
	"net/http"

	"github.com/inkreader/cardfs/internal/fsops"
	"github.com/inkreader/cardfs/internal/models"
	"github.com/inkreader/cardfs/pkg/httperrors"
)

// pathRequest — проверенный путь из query-параметра.
type pathRequest struct {
	rel string // путь, как его видит клиент, percent-декодированный
	abs string // путь на диске внутри корня карты
}

// requirePath валидирует query-параметр и проецирует его в корень карты.
// Необязательный параметр по умолчанию указывает на корень.
func (a *Server) requirePath(w http.ResponseWriter, r *http.Request, key string, required bool) (*pathRequest, bool) {
	// net/url уже применил percent-декодирование и '+' → пробел.
	rel := r.URL.Query().Get(key)
	if rel == "" {
		if required {
			httperrors.Write(w, fmt.Errorf("%w: %s parameter required", models.ErrMalformedRequest, key))
			return nil, false
		}
		rel = "/"
	}

	abs, err := fsops.Resolve(a.root, rel)
	if err != nil {
		httperrors.Write(w, err)
		return nil, false
	}

	return &pathRequest{rel: rel, abs: abs}, true
}
