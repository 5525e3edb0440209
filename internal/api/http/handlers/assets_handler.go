package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/labtrack/labtrack-service/internal/api/dto"
	"github.com/labtrack/labtrack-service/internal/service"
)

// AssetsHandler manages the equipment register.
type AssetsHandler struct {
	assets *service.AssetService
}

// NewAssetsHandler constructs handler.
func NewAssetsHandler(assetService *service.AssetService) *AssetsHandler {
	return &AssetsHandler{assets: assetService}
}

// Create handles POST /api/assets.
func (h *AssetsHandler) Create(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	var req dto.CreateAssetRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	asset, err := h.assets.Create(c.UserContext(), principal, service.AssetCreateInput{
		Name:         req.Name,
		AssetCode:    req.AssetCode,
		SerialNumber: req.SerialNumber,
		Location:     req.Location,
		Status:       req.Status,
		QRCode:       req.QRCode,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(assetResponse(asset))
}

// List handles GET /api/assets?page&limit. Unparsable values fall back to
// the defaults.
func (h *AssetsHandler) List(c *fiber.Ctx) error {
	page, err := h.assets.List(c.UserContext(), c.QueryInt("page", 0), c.QueryInt("limit", 0))
	if err != nil {
		return err
	}
	return c.JSON(dto.AssetPageResponse{
		Page:  page.Page,
		Limit: page.Limit,
		Data:  assetResponses(page.Data),
	})
}

// Update handles PUT /api/assets/:id.
func (h *AssetsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateAssetRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	asset, err := h.assets.Update(c.UserContext(), c.Params("id"), service.AssetUpdateInput{
		Name:         req.Name,
		AssetCode:    req.AssetCode,
		SerialNumber: req.SerialNumber,
		Location:     req.Location,
		Status:       req.Status,
		QRCode:       req.QRCode,
	})
	if err != nil {
		return err
	}
	return c.JSON(assetResponse(asset))
}

// Delete handles DELETE /api/assets/:id.
func (h *AssetsHandler) Delete(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	if err := h.assets.Delete(c.UserContext(), principal, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Asset deleted successfully"})
}
