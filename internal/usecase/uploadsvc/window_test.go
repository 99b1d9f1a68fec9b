package uploadsvc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWindow_FindAcrossAppends(t *testing.T) {
	var w window
	needle := []byte("--bnd")

	// Вхождение разорвано границей двух чанков.
	w.Append([]byte("content--b"))
	require.Equal(t, -1, w.Find(needle))

	w.Append([]byte("nd rest"))
	require.Equal(t, 7, w.Find(needle))
}

func TestWindow_FindResumesFromTail(t *testing.T) {
	var w window
	needle := []byte("xyz")

	w.Append([]byte("aaaaaaaa"))
	require.Equal(t, -1, w.Find(needle))
	require.Equal(t, 8, w.scanned)

	// Повторный неудачный поиск продвигает отметку до конца окна.
	w.Append([]byte("bbbb"))
	require.Equal(t, -1, w.Find(needle))
	require.Equal(t, 12, w.scanned)

	w.Append([]byte("xyz"))
	require.Equal(t, 12, w.Find(needle))
}

func TestWindow_DropThrough(t *testing.T) {
	var w window
	w.Append([]byte("0123456789"))

	w.DropThrough(4)
	require.Equal(t, []byte("456789"), w.Bytes())
	require.Zero(t, w.scanned)
}

func TestWindow_RetainTail(t *testing.T) {
	var w window
	w.Append([]byte("0123456789"))

	w.RetainTail(3)
	require.Equal(t, []byte("789"), w.Bytes())

	// Окно короче хвоста не усекается.
	w.RetainTail(10)
	require.Equal(t, []byte("789"), w.Bytes())
}

func TestWindow_Flushable(t *testing.T) {
	var w window
	w.Append([]byte("0123456789"))

	require.Equal(t, []byte("0123456"), w.Flushable(3))
	require.Nil(t, w.Flushable(10))
	require.Nil(t, w.Flushable(15))
}

func TestWindow_Reset(t *testing.T) {
	var w window
	w.Append([]byte("abc"))
	require.Equal(t, -1, w.Find([]byte("zz")))

	w.Reset()
	require.Zero(t, w.Len())
	require.Zero(t, w.scanned)
}
