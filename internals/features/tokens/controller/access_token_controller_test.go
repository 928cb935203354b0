package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "submitku_backend/internals/features/tokens/model"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.AccessTokenModel{}))

	app := fiber.New()
	ctl := &AccessTokenController{DB: db}
	app.Post("/api/tokens/validate", ctl.Validate)
	app.Post("/api/tokens/generate", ctl.Generate)
	app.Get("/api/tokens", ctl.List)
	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) (*http.Response, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp, decodeBody(t, resp)
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestValidateUnusedToken(t *testing.T) {
	app, db := newTestApp(t)
	require.NoError(t, db.Create(&model.AccessTokenModel{AccessTokenValue: "ICT-AB12CD34"}).Error)

	resp, body := postJSON(t, app, "/api/tokens/validate", fiber.Map{"token": "ICT-AB12CD34"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "Token valid", body["message"])
}

func TestValidateUnknownToken(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := postJSON(t, app, "/api/tokens/validate", fiber.Map{"token": "ICT-NOPENOPE"})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Token not found", body["message"])
}

func TestValidateUsedToken(t *testing.T) {
	app, db := newTestApp(t)
	require.NoError(t, db.Create(&model.AccessTokenModel{
		AccessTokenValue: "ICT-USEDUSED",
		AccessTokenUsed:  true,
	}).Error)

	resp, body := postJSON(t, app, "/api/tokens/validate", fiber.Map{"token": "ICT-USEDUSED"})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Token already used", body["message"])
}

func TestValidateMissingToken(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := postJSON(t, app, "/api/tokens/validate", fiber.Map{})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGenerateBatchOfThree(t *testing.T) {
	app, db := newTestApp(t)

	resp, body := postJSON(t, app, "/api/tokens/generate", fiber.Map{"amount": 3})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data, ok := body["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 3)

	values := map[string]bool{}
	for _, item := range data {
		rec := item.(map[string]any)
		v := rec["access_token_value"].(string)
		require.Regexp(t, `^ICT-[0-9A-Z]{8}$`, v)
		require.False(t, rec["access_token_used"].(bool))
		values[v] = true
	}
	require.Len(t, values, 3)

	var count int64
	require.NoError(t, db.Model(&model.AccessTokenModel{}).Count(&count).Error)
	require.EqualValues(t, 3, count)
}

func TestGenerateInvalidAmount(t *testing.T) {
	app, _ := newTestApp(t)

	for _, amount := range []int{0, -2} {
		resp, body := postJSON(t, app, "/api/tokens/generate", fiber.Map{"amount": amount})
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "Invalid amount", body["message"])
	}
}

func TestListNewestFirst(t *testing.T) {
	app, db := newTestApp(t)
	require.NoError(t, db.Create(&model.AccessTokenModel{AccessTokenValue: "ICT-AAAA1111"}).Error)
	require.NoError(t, db.Create(&model.AccessTokenModel{AccessTokenValue: "ICT-BBBB2222"}).Error)

	req := httptest.NewRequest(fiber.MethodGet, "/api/tokens", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].([]any)
	require.Len(t, data, 2)

	// dua kali GET tanpa write di antaranya → hasil identik
	req2 := httptest.NewRequest(fiber.MethodGet, "/api/tokens", nil)
	resp2, err := app.Test(req2, -1)
	require.NoError(t, err)
	body2 := decodeBody(t, resp2)
	require.Equal(t, body["data"], body2["data"])
}
