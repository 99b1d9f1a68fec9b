// Package fsops содержит файловые операции поверх корня карты памяти:
// песочница путей, идемпотентное создание каталогов и рекурсивное удаление.
package fsops

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/inkreader/cardfs/internal/models"
)

// Resolve превращает клиентский путь (начинается с '/') в путь на диске
// внутри root. Лексическая проверка: результат не должен выходить за root.
func Resolve(root, p string) (string, error) {
	cleanRoot := filepath.Clean(root)
	joined := filepath.Clean(filepath.Join(cleanRoot, filepath.FromSlash(p)))

	rel, err := filepath.Rel(cleanRoot, joined)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", models.ErrPathEscapesRoot
	}

	return joined, nil
}

// EnsureDir идемпотентно создаёт каждый недостающий сегмент пути.
// Существующие сегменты не трогаются и не считаются ошибкой.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// RemoveTree рекурсивно удаляет дерево под target. Удаление best-effort:
// отдельная неудача не прерывает обход, но итог считается ошибкой, если
// хотя бы одна операция не удалась. Корень карты удалять запрещено.
func RemoveTree(root, target string) error {
	cleanRoot := filepath.Clean(root)
	cleanTarget := filepath.Clean(target)
	if cleanTarget == cleanRoot || cleanTarget == string(filepath.Separator) {
		return models.ErrRootDelete
	}

	if !removeTree(cleanTarget) {
		return models.ErrRemoveIncomplete
	}

	return nil
}

func removeTree(path string) bool {
	entries, err := os.ReadDir(path)
	if err != nil {
		return false
	}

	ok := true
	for _, e := range entries {
		child := filepath.Join(path, e.Name())
		if e.IsDir() {
			if !removeTree(child) {
				ok = false
			}
			continue
		}

		if err := os.Remove(child); err != nil {
			log.Printf("fsops: remove %s: %v", child, err)
			ok = false
		}
	}

	// Сам каталог удаляется последним, когда он уже пуст.
	if err := os.Remove(path); err != nil {
		log.Printf("fsops: rmdir %s: %v", path, err)
		ok = false
	}

	return ok
}
