package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	submissionController "submitku_backend/internals/features/submissions/controller"
	submissionService "submitku_backend/internals/features/submissions/service"
)

// SubmissionUserRoutes: endpoint publik.
//   POST /api/submissions
//   GET  /api/download
func SubmissionUserRoutes(r fiber.Router, db *gorm.DB, ingestor submissionService.FileIngestor, scorer submissionService.Scorer) {
	ctl := &submissionController.SubmissionController{DB: db, Ingestor: ingestor, Scorer: scorer}
	dl := &submissionController.DownloadController{Ingestor: ingestor}

	r.Post("/submissions", ctl.Create)
	r.Get("/download", dl.Download)
}

// SubmissionAdminRoutes: endpoint admin.
//   GET /api/submissions
func SubmissionAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &submissionController.SubmissionController{DB: db}
	r.Get("/submissions", ctl.List)
}
