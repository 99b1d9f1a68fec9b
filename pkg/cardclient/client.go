// Package cardclient — Go-клиент REST API сервера cardfs. Используется
// CLI-утилитой и интеграционными тестами.
package cardclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/inkreader/cardfs/pkg/cardproto"
)

// Client ходит в один cardfs-сервер. Progress включает ASCII-индикатор
// передачи данных (для интерактивного CLI).
type Client struct {
	base     string
	c        *http.Client
	Progress bool
}

// New создаёт клиент по базовому URL сервера.
func New(baseURL string) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		c:    &http.Client{},
	}
}

// Info запрашивает сводку по карте.
func (c *Client) Info(ctx context.Context) (cardproto.InfoResponse, error) {
	var out cardproto.InfoResponse
	err := c.getJSON(ctx, c.url(cardproto.InfoPath, nil), &out)
	return out, err
}

// List запрашивает листинг каталога.
func (c *Client) List(ctx context.Context, path string) (cardproto.ListResponse, error) {
	var out cardproto.ListResponse
	err := c.getJSON(ctx, c.url(cardproto.ListPath, url.Values{"path": {path}}), &out)
	return out, err
}

// Get скачивает файл и возвращает поток с телом и его размер (-1, если
// сервер не сообщил Content-Length).
func (c *Client) Get(ctx context.Context, path string) (io.ReadCloser, int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(cardproto.FilePath, url.Values{"path": {path}}), nil)
	if err != nil {
		return nil, 0, err
	}

	resp, err := c.c.Do(req)
	if err != nil {
		return nil, 0, err
	}
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		return nil, 0, decodeError(resp)
	}

	return resp.Body, resp.ContentLength, nil
}

// Put загружает один файл целиком.
func (c *Client) Put(ctx context.Context, path string, r io.Reader, size int64) (cardproto.OpResponse, error) {
	var out cardproto.OpResponse

	body := r
	if c.Progress {
		body = newProgressReader(r, "Uploading "+path, size)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(cardproto.FilePath, url.Values{"path": {path}}), body)
	if err != nil {
		return out, err
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	if size >= 0 {
		req.ContentLength = size
	}

	return out, c.doJSON(req, &out)
}

// Delete удаляет файл или пустой каталог.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.op(ctx, http.MethodDelete, cardproto.FilePath, "path", path)
}

// Mkdir рекурсивно создаёт каталог.
func (c *Client) Mkdir(ctx context.Context, path string) error {
	return c.op(ctx, http.MethodPost, cardproto.MkdirPath, "path", path)
}

// Rmdir рекурсивно удаляет дерево каталога.
func (c *Client) Rmdir(ctx context.Context, path string) error {
	return c.op(ctx, http.MethodDelete, cardproto.RmdirPath, "path", path)
}

// PushTree стримит локальный каталог одним multipart-запросом батч-загрузки.
// Относительные пути файлов становятся filename-полями частей, так что
// структура подкаталогов воспроизводится на карте.
func (c *Client) PushTree(ctx context.Context, localDir, remoteDir string) (cardproto.UploadBatchResponse, error) {
	var out cardproto.UploadBatchResponse

	files, err := collectFiles(localDir)
	if err != nil {
		return out, err
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(writeParts(mw, localDir, files, c.Progress))
	}()

	u := c.url(cardproto.UploadBatchPath, url.Values{"dir": {remoteDir}})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, pr)
	if err != nil {
		return out, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return out, c.doJSON(req, &out)
}

// writeParts последовательно скармливает файлы multipart-писателю.
func writeParts(mw *multipart.Writer, localDir string, files []string, progress bool) error {
	for _, rel := range files {
		f, err := os.Open(filepath.Join(localDir, rel))
		if err != nil {
			return err
		}

		part, err := mw.CreateFormFile("file", encodeFilename(rel))
		if err != nil {
			f.Close()
			return err
		}

		var src io.Reader = f
		if progress {
			if fi, serr := f.Stat(); serr == nil {
				src = newProgressReader(f, "Pushing "+rel, fi.Size())
			}
		}

		_, err = io.Copy(part, src)
		f.Close()
		if err != nil {
			return err
		}
	}

	return mw.Close()
}

// collectFiles возвращает относительные (slash-разделённые) пути всех
// файлов под dir.
func collectFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))

		return nil
	})

	return files, err
}

// encodeFilename percent-кодирует байты, которые сервер декодирует обратно:
// сам '%', кавычку и управляющие символы. Остальное передаётся как есть.
func encodeFilename(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		ch := name[i]
		if ch == '%' || ch == '"' || ch < 0x20 {
			fmt.Fprintf(&b, "%%%02X", ch)
			continue
		}
		b.WriteByte(ch)
	}

	return b.String()
}

func (c *Client) op(ctx context.Context, method, path, key, value string) error {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path, url.Values{key: {value}}), nil)
	if err != nil {
		return err
	}

	var out cardproto.OpResponse
	return c.doJSON(req, &out)
}

func (c *Client) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	return c.doJSON(req, out)
}

func (c *Client) doJSON(req *http.Request, out any) error {
	resp, err := c.c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return decodeError(resp)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) url(path string, q url.Values) string {
	u := c.base + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	return u
}

func decodeError(resp *http.Response) error {
	var e cardproto.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&e); err == nil && e.Message != "" {
		return fmt.Errorf("server: %s (code %d)", e.Message, e.Code)
	}

	return fmt.Errorf("server: %s", resp.Status)
}
