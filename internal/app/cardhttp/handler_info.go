package cardhttp

import (
	"errors"
	"io/fs"
	"net/http"
	"path/filepath"

	"github.com/inkreader/cardfs/pkg/cardproto"
	"github.com/inkreader/cardfs/pkg/httperrors"
)

// info возвращает сводку по карте. Суммарный объём считается обходом
// дерева: отдельного учёта занятости сервер не ведёт.
func (a *Server) info(w http.ResponseWriter, _ *http.Request) {
	var used int64
	err := filepath.WalkDir(a.root, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			return err
		}
		used += fi.Size()

		return nil
	})

	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		httperrors.Write(w, err)
		return
	}

	writeJSON(w, cardproto.InfoResponse{
		Device:  "cardfs",
		Root:    "/",
		Storage: cardproto.StorageInfo{Used: used},
	})
}
