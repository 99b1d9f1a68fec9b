package cardhttp

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/inkreader/cardfs/internal/config"
	"github.com/inkreader/cardfs/internal/fsops"
	"github.com/inkreader/cardfs/pkg/cardproto"
)

// Server обслуживает REST API поверх каталога, в который смонтирована карта.
type Server struct {
	root      string // абсолютный корень карты
	chunkSize int    // размер окна чтения тела запроса
}

// NewServer подготавливает корень карты и возвращает готовый http.Handler.
func NewServer(cfg *config.Config) (http.Handler, error) {
	root, err := filepath.Abs(cfg.CardRoot)
	if err != nil {
		return nil, err
	}
	if err := fsops.EnsureDir(root); err != nil {
		return nil, err
	}

	srv := &Server{
		root:      root,
		chunkSize: cfg.ChunkSize,
	}

	return srv.routes(), nil
}

// routes регистрирует обработчики API.
func (a *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(cors)

	r.Get(cardproto.InfoPath, a.info)
	r.Get(cardproto.ListPath, a.listDir)
	r.Route(cardproto.FilePath, func(fr chi.Router) {
		fr.Get("/", a.getFile)
		fr.Post("/", a.putFile)
		fr.Delete("/", a.deleteFile)
	})
	r.Post(cardproto.MkdirPath, a.mkdir)
	r.Delete(cardproto.RmdirPath, a.rmdir)
	r.Post(cardproto.UploadBatchPath, a.uploadBatch)

	return r
}

// cors открывает API браузерному веб-клиенту читалки и отвечает на preflight.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
