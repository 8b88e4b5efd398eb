// file: internals/features/documents/controller/document_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "classhub_backend/internals/features/documents/dto"
	m "classhub_backend/internals/features/documents/model"
	helper "classhub_backend/internals/helpers"
	helperAuth "classhub_backend/internals/helpers/auth"
)

type DocumentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *DocumentController {
	return &DocumentController{DB: db, Validate: v}
}

func (ctl *DocumentController) Create(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrganizationIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}
	ownerID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	var req d.CreateDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	model := req.ToModel(orgID, ownerID)
	if err := ctl.DB.Create(&model).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Document created", d.FromModel(&model))
}

func (ctl *DocumentController) List(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrganizationIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 200)

	query := ctl.DB.Model(&m.DocumentModel{}).
		Where("document_organization_id = ?", orgID)

	if kind := c.Query("kind"); kind != "" {
		query = query.Where("document_kind = ?", kind)
	}
	if tag := c.Query("tag"); tag != "" {
		query = query.Where("? = ANY(document_tags)", tag)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var docs []m.DocumentModel
	if err := query.
		Order("document_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&docs).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonList(c, "Documents", d.FromModels(docs),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *DocumentController) findOwned(orgID, id uuid.UUID) (*m.DocumentModel, error) {
	var doc m.DocumentModel
	if err := ctl.DB.
		Where("document_id = ? AND document_organization_id = ?", id, orgID).
		First(&doc).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

func (ctl *DocumentController) GetByID(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrganizationIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	doc, err := ctl.findOwned(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "document not found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Document", d.FromModel(doc))
}

func (ctl *DocumentController) Patch(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrganizationIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req d.PatchDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	doc, err := ctl.findOwned(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "document not found")
		}
		return helper.WritePGError(c, err)
	}

	req.Apply(doc)
	if err := ctl.DB.Save(doc).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Document updated", d.FromModel(doc))
}

func (ctl *DocumentController) Delete(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrganizationIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	doc, err := ctl.findOwned(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "document not found")
		}
		return helper.WritePGError(c, err)
	}

	if err := ctl.DB.Delete(doc).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Document deleted", d.FromModel(doc))
}
