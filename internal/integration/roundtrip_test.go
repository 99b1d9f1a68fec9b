package integration

import (
	"bytes"
	"context"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/inkreader/cardfs/internal/app/cardhttp"
	"github.com/inkreader/cardfs/internal/config"
	"github.com/inkreader/cardfs/pkg/cardclient"
)

// startServer поднимает полный стек над временным корнем карты.
// chunk_size выбран маленьким, чтобы загрузка шла через много чанков.
func startServer(t *testing.T) (*cardclient.Client, string) {
	t.Helper()
	root := t.TempDir()

	handler, err := cardhttp.NewServer(&config.Config{CardRoot: root, ChunkSize: 7})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return cardclient.New(srv.URL), root
}

func TestPushTreeRoundtrip(t *testing.T) {
	client, _ := startServer(t)
	ctx := context.Background()

	local := t.TempDir()
	want := map[string][]byte{
		"book.txt":          bytes.Repeat([]byte("страница\n"), 512),
		"notes/ch1.md":      []byte("# Глава 1\n"),
		"notes/ch2.md":      {},
		"covers/front.webp": {0x52, 0x49, 0x46, 0x46, 0x00, 0x01},
	}
	for name, data := range want {
		p := filepath.Join(local, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(p, data, 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	res, err := client.PushTree(ctx, local, "/library")
	if err != nil {
		t.Fatalf("push tree: %v", err)
	}
	if !res.Success {
		t.Fatal("push tree reported failure")
	}
	if res.Count != len(want) {
		t.Fatalf("uploaded %d files, want %d", res.Count, len(want))
	}

	for name, data := range want {
		rc, size, err := client.Get(ctx, "/library/"+name)
		if err != nil {
			t.Fatalf("get %s: %v", name, err)
		}
		got, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if !bytes.Equal(got, data) {
			t.Errorf("%s: content mismatch, got %d bytes, want %d", name, len(got), len(data))
		}
		if size >= 0 && size != int64(len(data)) {
			t.Errorf("%s: content-length %d, want %d", name, size, len(data))
		}
	}
}

func TestMkdirUploadRmdir(t *testing.T) {
	client, root := startServer(t)
	ctx := context.Background()

	if err := client.Mkdir(ctx, "/inbox/today"); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	payload := bytes.Repeat([]byte("x"), 1000)
	if _, err := client.Put(ctx, "/inbox/today/a.bin", bytes.NewReader(payload), int64(len(payload))); err != nil {
		t.Fatalf("put: %v", err)
	}

	list, err := client.List(ctx, "/inbox/today")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list.Items) != 1 || list.Items[0].Name != "a.bin" {
		t.Fatalf("unexpected listing: %+v", list.Items)
	}
	if list.Items[0].Size == nil || *list.Items[0].Size != int64(len(payload)) {
		t.Fatalf("unexpected size in listing: %+v", list.Items[0].Size)
	}

	if err := client.Rmdir(ctx, "/inbox"); err != nil {
		t.Fatalf("rmdir: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "inbox")); !os.IsNotExist(err) {
		t.Fatalf("directory still present after rmdir: %v", err)
	}

	if err := client.Rmdir(ctx, "/"); err == nil {
		t.Fatal("rmdir of root did not fail")
	}
}

func TestDeleteAndInfo(t *testing.T) {
	client, _ := startServer(t)
	ctx := context.Background()

	body := []byte("short-lived")
	if _, err := client.Put(ctx, "/tmp.txt", bytes.NewReader(body), int64(len(body))); err != nil {
		t.Fatalf("put: %v", err)
	}

	info, err := client.Info(ctx)
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	if info.Storage.Used != int64(len(body)) {
		t.Fatalf("used %d bytes, want %d", info.Storage.Used, len(body))
	}

	if err := client.Delete(ctx, "/tmp.txt"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := client.Delete(ctx, "/tmp.txt"); err == nil {
		t.Fatal("second delete did not fail")
	}
}
