// internals/features/submissions/service/ingest.go
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"

	"submitku_backend/internals/constants"
	helperOSS "submitku_backend/internals/helpers/oss"
)

// ErrFileTooLarge: satu file melewati batas ukuran.
var ErrFileTooLarge = errors.New("file too large")

// ErrBadPublicURL: URL download tidak valid, bukan kegagalan storage.
var ErrBadPublicURL = helperOSS.ErrBadPublicURL

// StoredFile: hasil satu upload yang sukses.
type StoredFile struct {
	URL  string
	Name string
}

// FileIngestor memindahkan part multipart ke object storage dan
// mengembalikan URL publiknya. Discard adalah kompensasi: hapus file yang
// sudah terlanjur naik ketika batch gagal di tengah jalan.
type FileIngestor interface {
	Ingest(ctx context.Context, dir string, files []*multipart.FileHeader) ([]StoredFile, error)
	Discard(ctx context.Context, files []StoredFile)
	// Fetch membuka stream satu objek dari URL publiknya (untuk proxy download).
	Fetch(ctx context.Context, publicURL string) (io.ReadCloser, string, error)
}

/* =========================================================
   OSS implementation
========================================================= */

type ossIngestor struct {
	svc *helperOSS.OSSService
}

func NewOSSIngestor(svc *helperOSS.OSSService) FileIngestor {
	return &ossIngestor{svc: svc}
}

func (g *ossIngestor) Ingest(ctx context.Context, dir string, files []*multipart.FileHeader) ([]StoredFile, error) {
	stored := make([]StoredFile, 0, len(files))
	for _, fh := range files {
		if fh.Size > constants.MaxUploadFileSize {
			g.Discard(ctx, stored)
			return nil, fmt.Errorf("%w: %s", ErrFileTooLarge, fh.Filename)
		}
		key, _, err := g.svc.UploadFromFormFileToDir(ctx, dir, fh)
		if err != nil {
			// batch gagal → bersihkan yang sudah naik supaya tidak ada orphan
			g.Discard(ctx, stored)
			return nil, fmt.Errorf("upload %s: %w", fh.Filename, err)
		}
		stored = append(stored, StoredFile{
			URL:  g.svc.PublicURL(key),
			Name: fh.Filename,
		})
	}
	return stored, nil
}

func (g *ossIngestor) Discard(ctx context.Context, files []StoredFile) {
	if len(files) == 0 {
		return
	}
	urls := make([]string, 0, len(files))
	for _, f := range files {
		urls = append(urls, f.URL)
	}
	if _, failed := g.svc.DeleteManyByPublicURL(ctx, urls); len(failed) > 0 {
		for u, err := range failed {
			log.Printf("[INGEST] discard %s: %v", u, err)
		}
	}
}

func (g *ossIngestor) Fetch(ctx context.Context, publicURL string) (io.ReadCloser, string, error) {
	return g.svc.FetchByPublicURL(ctx, publicURL)
}
