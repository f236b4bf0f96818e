package controller

import (
	"errors"
	"log"
	"sync"

	"github.com/gofiber/fiber/v2"

	helper "egoejo_backend/internals/helpers"
	ossHelper "egoejo_backend/internals/helpers/oss"
)

type UploadController struct {
	once sync.Once
	oss  *ossHelper.OSSService
	err  error
}

func NewUploadController() *UploadController {
	return &UploadController{}
}

// service: init paresseuse, le process démarre même sans config OSS
func (ctrl *UploadController) service() (*ossHelper.OSSService, error) {
	ctrl.once.Do(func() {
		ctrl.oss, ctrl.err = ossHelper.NewOSSServiceFromEnv("intents/documents")
		if ctrl.err != nil {
			log.Printf("[ERROR] OSS indisponible: %v", ctrl.err)
		}
	})
	return ctrl.oss, ctrl.err
}

// =======================
// 📎 Upload justificatif (public)
// multipart, champ `document`; renvoie l'URL à remettre dans
// `documentUrl` lors de la soumission d'intention.
// =======================
func (ctrl *UploadController) UploadDocument(c *fiber.Ctx) error {
	svc, err := ctrl.service()
	if err != nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Stockage indisponible")
	}

	fh, err := c.FormFile("document")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Fichier manquant")
	}

	url, err := svc.UploadDocument(c.UserContext(), fh)
	if err != nil {
		if errors.Is(err, ossHelper.ErrTooLarge) || errors.Is(err, ossHelper.ErrUnsupportedType) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		log.Printf("[ERROR] upload justificatif: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erreur serveur")
	}

	return helper.JsonOK(c, fiber.Map{"url": url})
}
