// internals/features/submissions/controller/download_controller.go
package controller

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	service "submitku_backend/internals/features/submissions/service"
	helper "submitku_backend/internals/helpers"
)

type DownloadController struct {
	Ingestor service.FileIngestor
}

// =========================================================
// DOWNLOAD - GET /api/download?url=&name=
// Proxy stream dari object storage dengan header attachment,
// supaya browser men-download alih-alih membuka inline.
// =========================================================
func (h *DownloadController) Download(c *fiber.Ctx) error {
	url := strings.TrimSpace(c.Query("url"))
	if url == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "url query param is required")
	}

	body, contentType, err := h.Ingestor.Fetch(c.UserContext(), url)
	if err != nil {
		if errors.Is(err, service.ErrBadPublicURL) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid file URL")
		}
		return helper.JsonError(c, fiber.StatusBadGateway, "Failed to fetch file")
	}

	name := sanitizeFilename(c.Query("name"))
	if name == "" {
		name = sanitizeFilename(filepath.Base(url))
	}
	if name == "" {
		name = "download"
	}

	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, name))
	return c.SendStream(body)
}

// sanitizeFilename membuang karakter yang bisa merusak header.
func sanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	name = strings.Map(func(r rune) rune {
		switch r {
		case '"', '\\', '\r', '\n', '/', ';':
			return -1
		}
		return r
	}, name)
	return name
}
