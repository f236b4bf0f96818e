package controller

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"egoejo_backend/internals/features/intents/dto"
	"egoejo_backend/internals/features/intents/model"
	helper "egoejo_backend/internals/helpers"
)

type IntentAdminController struct {
	DB *gorm.DB
}

func NewIntentAdminController(db *gorm.DB) *IntentAdminController {
	return &IntentAdminController{DB: db}
}

// =======================
// 📄 Liste paginée
// Query: ?page=1&per_page=20&profile=je-decouvre
// =======================
func (ctrl *IntentAdminController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.IntentModel{})
	if profile := c.Query("profile"); profile != "" {
		q = q.Where("intent_profile = ?", profile)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erreur serveur")
	}

	var intents []model.IntentModel
	if err := q.
		Order("intent_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&intents).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erreur serveur")
	}

	resp := make([]dto.IntentDTO, 0, len(intents))
	for _, in := range intents {
		resp = append(resp, dto.ToIntentDTO(in))
	}

	return helper.JsonList(c, resp, helper.BuildPagination(paging, total))
}

// =======================
// 📦 Export CSV complet
// =======================
func (ctrl *IntentAdminController) ExportCSV(c *fiber.Ctx) error {
	var intents []model.IntentModel
	if err := ctrl.DB.
		Order("intent_created_at ASC").
		Find(&intents).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erreur serveur")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"id", "name", "email", "profile", "message", "document_url", "ip", "user_agent", "created_at"})
	for _, in := range intents {
		_ = w.Write([]string{
			strconv.FormatInt(in.IntentID, 10),
			in.IntentName,
			in.IntentEmail,
			in.IntentProfile,
			deref(in.IntentMessage),
			deref(in.IntentDocumentURL),
			deref(in.IntentIP),
			deref(in.IntentUserAgent),
			in.IntentCreatedAt.Format(time.RFC3339),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erreur serveur")
	}

	filename := fmt.Sprintf("intents-%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

// =======================
// 🗑️ Delete by ID
// =======================
func (ctrl *IntentAdminController) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id invalide")
	}

	res := ctrl.DB.Delete(&model.IntentModel{}, "intent_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erreur serveur")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Intention introuvable")
	}

	return helper.JsonOK(c, fiber.Map{"deleted": id})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
