package fsops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inkreader/cardfs/internal/models"
)

func TestResolve(t *testing.T) {
	root := t.TempDir()

	p, err := Resolve(root, "/books/war.epub")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "books", "war.epub"), p)

	p, err = Resolve(root, "/")
	require.NoError(t, err)
	require.Equal(t, filepath.Clean(root), p)

	// Относительный путь проецируется так же, как абсолютный клиентский.
	p, err = Resolve(root, "a/b.txt")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "a", "b.txt"), p)
}

func TestResolve_RejectsEscapes(t *testing.T) {
	root := t.TempDir()

	for _, in := range []string{"..", "../x", "/a/../../x", "a/b/../../../c"} {
		_, err := Resolve(root, in)
		require.ErrorIs(t, err, models.ErrPathEscapesRoot, "input %q", in)
	}

	// ".." внутри пути, не выводящий за корень, допустим.
	p, err := Resolve(root, "/a/b/../c")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "a", "c"), p)
}

func TestEnsureDir(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "a", "b", "c")

	require.NoError(t, EnsureDir(dir))
	fi, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, fi.IsDir())

	// Повторный вызов идемпотентен.
	require.NoError(t, EnsureDir(dir))
}

func TestRemoveTree(t *testing.T) {
	root := t.TempDir()
	top := filepath.Join(root, "top")

	require.NoError(t, EnsureDir(filepath.Join(top, "sub", "deep")))
	require.NoError(t, os.WriteFile(filepath.Join(top, "f1.txt"), []byte("1"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(top, "sub", "f2.txt"), []byte("2"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(top, "sub", "deep", "f3.txt"), []byte("3"), 0o644))

	require.NoError(t, RemoveTree(root, top))

	_, err := os.Stat(top)
	require.True(t, os.IsNotExist(err))
}

func TestRemoveTree_ContinuesPastFailure(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}

	root := t.TempDir()
	top := filepath.Join(root, "top")
	locked := filepath.Join(top, "locked")

	require.NoError(t, EnsureDir(locked))
	require.NoError(t, os.WriteFile(filepath.Join(top, "sibling.txt"), []byte("s"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(locked, "stuck.txt"), []byte("x"), 0o644))

	// Каталог без права записи: его содержимое удалить нельзя.
	require.NoError(t, os.Chmod(locked, 0o555))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	require.ErrorIs(t, RemoveTree(root, top), models.ErrRemoveIncomplete)

	// Соседние ветки всё равно удалены, застрявший файл остался.
	_, err := os.Stat(filepath.Join(top, "sibling.txt"))
	require.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(locked, "stuck.txt"))
	require.NoError(t, err)
}

func TestRemoveTree_RefusesRoot(t *testing.T) {
	root := t.TempDir()

	require.ErrorIs(t, RemoveTree(root, root), models.ErrRootDelete)
	require.ErrorIs(t, RemoveTree(root, string(filepath.Separator)), models.ErrRootDelete)

	// Корень остался на месте.
	_, err := os.Stat(root)
	require.NoError(t, err)
}

func TestRemoveTree_MissingDirReportsFailure(t *testing.T) {
	root := t.TempDir()

	err := RemoveTree(root, filepath.Join(root, "absent"))
	require.ErrorIs(t, err, models.ErrRemoveIncomplete)
}
