package service

import (
	"bytes"
	"context"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quiz_app_backend/internal/config"
	"quiz_app_backend/internal/util"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func newLocalStorage(t *testing.T) (*StorageService, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.Storage.Type = util.StorageLocal
	cfg.Storage.LocalPath = dir
	return NewStorageService(cfg), dir
}

func fileHeaderFor(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("image", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	w.Close()

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["image"][0]
}

func TestStoreImageRejectsBadExtension(t *testing.T) {
	svc, _ := newLocalStorage(t)

	_, err := svc.StoreImage(context.Background(), fileHeaderFor(t, "nota.txt", []byte("texto")))
	ve, ok := util.AsValidationError(err)
	if !ok {
		t.Fatalf("err = %v, want validation error", err)
	}
	if got := ve.Fields["image"]; got != "A imagem deve ser um arquivo do tipo: jpeg, png, jpg, gif, svg." {
		t.Fatalf("message = %q", got)
	}
}

func TestStoreImageRejectsOversize(t *testing.T) {
	svc, _ := newLocalStorage(t)

	big := make([]byte, util.MaxImageSize+1)
	copy(big, pngBytes)

	_, err := svc.StoreImage(context.Background(), fileHeaderFor(t, "grande.png", big))
	ve, ok := util.AsValidationError(err)
	if !ok {
		t.Fatalf("err = %v, want validation error", err)
	}
	if got := ve.Fields["image"]; got != "A imagem não pode ser maior que 2048 kilobytes." {
		t.Fatalf("message = %q", got)
	}
}

func TestStoreImageRejectsFakeImage(t *testing.T) {
	svc, _ := newLocalStorage(t)

	_, err := svc.StoreImage(context.Background(), fileHeaderFor(t, "falsa.png", []byte("isto não é uma imagem")))
	if _, ok := util.AsValidationError(err); !ok {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestStoreImageWritesAndRemoveDeletes(t *testing.T) {
	svc, dir := newLocalStorage(t)
	ctx := context.Background()

	path, err := svc.StoreImage(ctx, fileHeaderFor(t, "capa.png", pngBytes))
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if !strings.HasPrefix(path, "images/") || !strings.HasSuffix(path, ".png") {
		t.Fatalf("path = %q", path)
	}

	full := filepath.Join(dir, path)
	if _, err := os.Stat(full); err != nil {
		t.Fatalf("stored file: %v", err)
	}

	svc.RemoveImage(ctx, path)
	if _, err := os.Stat(full); !os.IsNotExist(err) {
		t.Fatalf("expected file removed, stat err = %v", err)
	}

	// Caminho vazio e caminho já removido não podem derrubar a operação.
	svc.RemoveImage(ctx, "")
	svc.RemoveImage(ctx, path)
}

func TestStoreImageAcceptsSVGWithoutSniffing(t *testing.T) {
	svc, dir := newLocalStorage(t)

	path, err := svc.StoreImage(context.Background(), fileHeaderFor(t, "icone.svg", []byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`)))
	if err != nil {
		t.Fatalf("store svg: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, path)); err != nil {
		t.Fatalf("stored svg: %v", err)
	}
}
