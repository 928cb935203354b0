package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"submitku_backend/internals/constants"
	model "submitku_backend/internals/features/submissions/model"
	service "submitku_backend/internals/features/submissions/service"
	tokenModel "submitku_backend/internals/features/tokens/model"
)

/* =========================================================
   Fake ingestor: meniru kontrak OSS ingestor (size check,
   kompensasi discard) tanpa object storage sungguhan.
========================================================= */

type fakeIngestor struct {
	ingestErr error
	fetchErr  error
	ingested  []service.StoredFile
	discarded []service.StoredFile
}

func (f *fakeIngestor) Ingest(_ context.Context, dir string, files []*multipart.FileHeader) ([]service.StoredFile, error) {
	if f.ingestErr != nil {
		return nil, f.ingestErr
	}
	out := make([]service.StoredFile, 0, len(files))
	for _, fh := range files {
		if fh.Size > constants.MaxUploadFileSize {
			return nil, fmt.Errorf("%w: %s", service.ErrFileTooLarge, fh.Filename)
		}
		out = append(out, service.StoredFile{
			URL:  "https://bucket.example.com/" + dir + "/" + fh.Filename,
			Name: fh.Filename,
		})
	}
	f.ingested = append(f.ingested, out...)
	return out, nil
}

func (f *fakeIngestor) Discard(_ context.Context, files []service.StoredFile) {
	f.discarded = append(f.discarded, files...)
}

func (f *fakeIngestor) Fetch(_ context.Context, _ string) (io.ReadCloser, string, error) {
	if f.fetchErr != nil {
		return nil, "", f.fetchErr
	}
	return io.NopCloser(strings.NewReader("filedata")), "application/pdf", nil
}

/* =========================================================
   Helpers
========================================================= */

func newTestApp(t *testing.T, ing service.FileIngestor) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&tokenModel.AccessTokenModel{}, &model.SubmissionModel{}))

	app := fiber.New(fiber.Config{BodyLimit: 64 * 1024 * 1024})
	ctl := &SubmissionController{DB: db, Ingestor: ing, Scorer: service.RandomScorer(60, 100)}
	dl := &DownloadController{Ingestor: ing}
	app.Post("/api/submissions", ctl.Create)
	app.Get("/api/submissions", ctl.List)
	app.Get("/api/download", dl.Download)
	return app, db
}

func seedToken(t *testing.T, db *gorm.DB, value string) {
	t.Helper()
	require.NoError(t, db.Create(&tokenModel.AccessTokenModel{AccessTokenValue: value}).Error)
}

type filePart struct {
	name string
	size int
}

func buildSubmission(t *testing.T, token string, files []filePart) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	fields := map[string]string{
		"name":        "Ada Obi",
		"department":  "Computer Science",
		"course":      "CSC 401",
		"phone":       "08012345678",
		"email":       "ada@example.com",
		"token":       token,
		"payment_ref": "REF-1",
	}
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		part, err := w.CreateFormFile("files", f.name)
		require.NoError(t, err)
		_, err = part.Write(bytes.Repeat([]byte("a"), f.size))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}

func postSubmission(t *testing.T, app *fiber.App, body *bytes.Buffer, contentType string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/api/submissions", body)
	req.Header.Set(fiber.HeaderContentType, contentType)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return resp, out
}

/* =========================================================
   Tests
========================================================= */

func TestCreateSubmissionHappyPath(t *testing.T) {
	ing := &fakeIngestor{}
	app, db := newTestApp(t, ing)
	seedToken(t, db, "ICT-AB12CD34")

	body, ct := buildSubmission(t, "ICT-AB12CD34", []filePart{{name: "assignment.pdf", size: 1 << 20}})
	resp, out := postSubmission(t, app, body, ct)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := out["data"].(map[string]any)
	require.EqualValues(t, 1, data["submission_file_count"])
	require.EqualValues(t, 200, data["submission_amount_paid"])
	score := int(data["submission_score"].(float64))
	require.GreaterOrEqual(t, score, 60)
	require.LessOrEqual(t, score, 100)

	// token terkonsumsi
	var tok tokenModel.AccessTokenModel
	require.NoError(t, db.First(&tok, "access_token_value = ?", "ICT-AB12CD34").Error)
	require.True(t, tok.AccessTokenUsed)

	// satu record submission dengan daftar file terurut
	var m model.SubmissionModel
	require.NoError(t, db.First(&m, "submission_token = ?", "ICT-AB12CD34").Error)
	items := m.SubmissionFiles.Data()
	require.Len(t, items, 1)
	require.Equal(t, "assignment.pdf", items[0].Name)
	require.Contains(t, items[0].URL, "ict-ab12cd34")
	require.Empty(t, ing.discarded)
}

func TestCreateSubmissionAmountScalesWithFiles(t *testing.T) {
	ing := &fakeIngestor{}
	app, db := newTestApp(t, ing)
	seedToken(t, db, "ICT-AAAA1111")

	body, ct := buildSubmission(t, "ICT-AAAA1111", []filePart{
		{name: "a.pdf", size: 100},
		{name: "b.docx", size: 100},
		{name: "c.zip", size: 100},
	})
	resp, out := postSubmission(t, app, body, ct)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := out["data"].(map[string]any)
	require.EqualValues(t, 3, data["submission_file_count"])
	require.EqualValues(t, 600, data["submission_amount_paid"])
}

func TestCreateSubmissionNoFiles(t *testing.T) {
	ing := &fakeIngestor{}
	app, db := newTestApp(t, ing)
	seedToken(t, db, "ICT-AAAA1111")

	body, ct := buildSubmission(t, "ICT-AAAA1111", nil)
	resp, out := postSubmission(t, app, body, ct)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "No files provided", out["message"])

	var count int64
	require.NoError(t, db.Model(&model.SubmissionModel{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestCreateSubmissionTooManyFiles(t *testing.T) {
	ing := &fakeIngestor{}
	app, db := newTestApp(t, ing)
	seedToken(t, db, "ICT-AAAA1111")

	files := make([]filePart, 6)
	for i := range files {
		files[i] = filePart{name: fmt.Sprintf("f%d.pdf", i), size: 10}
	}
	body, ct := buildSubmission(t, "ICT-AAAA1111", files)
	resp, _ := postSubmission(t, app, body, ct)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// token tidak hangus karena gagal sebelum commit
	var tok tokenModel.AccessTokenModel
	require.NoError(t, db.First(&tok, "access_token_value = ?", "ICT-AAAA1111").Error)
	require.False(t, tok.AccessTokenUsed)
}

func TestCreateSubmissionFileSizeBoundary(t *testing.T) {
	ing := &fakeIngestor{}
	app, db := newTestApp(t, ing)
	seedToken(t, db, "ICT-AAAA1111")
	seedToken(t, db, "ICT-BBBB2222")

	// tepat di batas → diterima
	body, ct := buildSubmission(t, "ICT-AAAA1111", []filePart{{name: "max.pdf", size: int(constants.MaxUploadFileSize)}})
	resp, _ := postSubmission(t, app, body, ct)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// satu byte lewat → ditolak
	body2, ct2 := buildSubmission(t, "ICT-BBBB2222", []filePart{{name: "over.pdf", size: int(constants.MaxUploadFileSize) + 1}})
	resp2, _ := postSubmission(t, app, body2, ct2)
	require.Equal(t, fiber.StatusBadRequest, resp2.StatusCode)

	var tok tokenModel.AccessTokenModel
	require.NoError(t, db.First(&tok, "access_token_value = ?", "ICT-BBBB2222").Error)
	require.False(t, tok.AccessTokenUsed)
}

func TestCreateSubmissionUnknownToken(t *testing.T) {
	ing := &fakeIngestor{}
	app, _ := newTestApp(t, ing)

	body, ct := buildSubmission(t, "ICT-NOPENOPE", []filePart{{name: "a.pdf", size: 10}})
	resp, out := postSubmission(t, app, body, ct)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Token not found", out["message"])
}

func TestCreateSubmissionTokenSingleUse(t *testing.T) {
	ing := &fakeIngestor{}
	app, db := newTestApp(t, ing)
	seedToken(t, db, "ICT-AB12CD34")

	body, ct := buildSubmission(t, "ICT-AB12CD34", []filePart{{name: "a.pdf", size: 10}})
	resp, _ := postSubmission(t, app, body, ct)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// token sama dipakai lagi → ditolak, tidak ada record kedua
	body2, ct2 := buildSubmission(t, "ICT-AB12CD34", []filePart{{name: "b.pdf", size: 10}})
	resp2, out2 := postSubmission(t, app, body2, ct2)
	require.Equal(t, fiber.StatusBadRequest, resp2.StatusCode)
	require.Equal(t, "Token already used", out2["message"])

	var count int64
	require.NoError(t, db.Model(&model.SubmissionModel{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestCreateSubmissionCommitFailureDiscardsUploads(t *testing.T) {
	ing := &fakeIngestor{}
	app, db := newTestApp(t, ing)
	seedToken(t, db, "ICT-AB12CD34")

	body, ct := buildSubmission(t, "ICT-AB12CD34", []filePart{{name: "a.pdf", size: 10}})

	// paksa insert gagal supaya jalur kompensasi teruji
	require.NoError(t, db.Migrator().DropTable(&model.SubmissionModel{}))

	resp, _ := postSubmission(t, app, body, ct)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	require.NotEmpty(t, ing.discarded, "gagal commit harus membersihkan upload")

	// token tidak hangus
	var tok tokenModel.AccessTokenModel
	require.NoError(t, db.First(&tok, "access_token_value = ?", "ICT-AB12CD34").Error)
	require.False(t, tok.AccessTokenUsed)
}

func TestCreateSubmissionIngestFailure(t *testing.T) {
	ing := &fakeIngestor{ingestErr: errors.New("oss: connection reset")}
	app, db := newTestApp(t, ing)
	seedToken(t, db, "ICT-AB12CD34")

	body, ct := buildSubmission(t, "ICT-AB12CD34", []filePart{{name: "a.pdf", size: 10}})
	resp, _ := postSubmission(t, app, body, ct)
	require.Equal(t, fiber.StatusBadGateway, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.SubmissionModel{}).Count(&count).Error)
	require.Zero(t, count)

	var tok tokenModel.AccessTokenModel
	require.NoError(t, db.First(&tok, "access_token_value = ?", "ICT-AB12CD34").Error)
	require.False(t, tok.AccessTokenUsed)
}

func TestListSubmissionsIdempotent(t *testing.T) {
	ing := &fakeIngestor{}
	app, db := newTestApp(t, ing)
	seedToken(t, db, "ICT-AAAA1111")
	seedToken(t, db, "ICT-BBBB2222")

	for _, tok := range []string{"ICT-AAAA1111", "ICT-BBBB2222"} {
		body, ct := buildSubmission(t, tok, []filePart{{name: "a.pdf", size: 10}})
		resp, _ := postSubmission(t, app, body, ct)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	get := func() map[string]any {
		req := httptest.NewRequest(fiber.MethodGet, "/api/submissions", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		var out map[string]any
		require.NoError(t, json.Unmarshal(raw, &out))
		return out
	}

	first := get()
	second := get()
	require.EqualValues(t, 2, first["count"])
	require.Equal(t, first["data"], second["data"])
}

func TestDownloadProxy(t *testing.T) {
	ing := &fakeIngestor{}
	app, _ := newTestApp(t, ing)

	req := httptest.NewRequest(fiber.MethodGet,
		"/api/download?url=https%3A%2F%2Fbucket.example.com%2Fsubmissions%2Fa.pdf&name=report.pdf", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, `attachment; filename="report.pdf"`, resp.Header.Get(fiber.HeaderContentDisposition))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "filedata", string(raw))
}

func TestDownloadMissingURL(t *testing.T) {
	ing := &fakeIngestor{}
	app, _ := newTestApp(t, ing)

	req := httptest.NewRequest(fiber.MethodGet, "/api/download", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDownloadInvalidURL(t *testing.T) {
	// URL yang tidak bisa dipetakan ke key objek → salah input, bukan 502
	ing := &fakeIngestor{fetchErr: fmt.Errorf("%w: not-a-url", service.ErrBadPublicURL)}
	app, _ := newTestApp(t, ing)

	req := httptest.NewRequest(fiber.MethodGet, "/api/download?url=not-a-url", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDownloadStorageFailure(t *testing.T) {
	ing := &fakeIngestor{fetchErr: errors.New("oss: connection reset")}
	app, _ := newTestApp(t, ing)

	req := httptest.NewRequest(fiber.MethodGet,
		"/api/download?url=https%3A%2F%2Fbucket.example.com%2Fsubmissions%2Fa.pdf", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
}
