package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"catalog/internal/delivery/api/response"
	"catalog/internal/delivery/api/validator"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SkuHandlerParams holds dependencies for SkuHandler, injected by Fx.
type SkuHandlerParams struct {
	fx.In

	SkuUC   usecase.SkuUsecase
	AuditUC usecase.AuditUsecase
	Logger  *slog.Logger
}

// SkuHandler holds dependencies for catalog handlers
type SkuHandler struct {
	skuUC   usecase.SkuUsecase
	auditUC usecase.AuditUsecase
	logger  *slog.Logger
}

// NewSkuHandler is the constructor for SkuHandler
func NewSkuHandler(params SkuHandlerParams) *SkuHandler {
	return &SkuHandler{
		skuUC:   params.SkuUC,
		auditUC: params.AuditUC,
		logger:  params.Logger,
	}
}

// SkuRequest represents the request body for creating or updating a SKU
type SkuRequest struct {
	SkuCode     string  `json:"sku_code" validate:"required,max=100"`
	Name        string  `json:"name" validate:"required,max=255"`
	StyleName   string  `json:"style_name" validate:"required,max=255"`
	Colour      string  `json:"colour" validate:"required,max=100"`
	Description string  `json:"description" validate:"max=1000"`
	Quantity    *int    `json:"quantity" validate:"required,gte=0"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required,max=100"`
	Supplier    string  `json:"supplier" validate:"max=255"`
	Size        string  `json:"size" validate:"max=50"`
}

func (r *SkuRequest) toInput() *usecase.SkuInput {
	return &usecase.SkuInput{
		SkuCode:     r.SkuCode,
		Name:        r.Name,
		StyleName:   r.StyleName,
		Colour:      r.Colour,
		Description: r.Description,
		Quantity:    *r.Quantity,
		Price:       r.Price,
		Category:    r.Category,
		Supplier:    r.Supplier,
		Size:        r.Size,
	}
}

// ListSkus handles listing the whole catalog
func (h *SkuHandler) ListSkus(c echo.Context) error {
	skus, err := h.skuUC.ListSkus(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, skus)
}

// GetSku handles retrieving one SKU by ID
func (h *SkuHandler) GetSku(c echo.Context) error {
	id, ok := parseSkuID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid SKU ID")
	}

	sku, err := h.skuUC.GetSku(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sku)
}

// GetSkuByCode handles retrieving one SKU by its code
func (h *SkuHandler) GetSkuByCode(c echo.Context) error {
	sku, err := h.skuUC.GetSkuByCode(c.Request().Context(), pathParam(c, "skuCode"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sku)
}

// SearchSkus handles the free-text catalog search
func (h *SkuHandler) SearchSkus(c echo.Context) error {
	skus, err := h.skuUC.SearchSkus(c.Request().Context(), c.QueryParam("term"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, skus)
}

// ListSkusByCategory handles listing the SKUs of one category
func (h *SkuHandler) ListSkusByCategory(c echo.Context) error {
	skus, err := h.skuUC.ListSkusByCategory(c.Request().Context(), pathParam(c, "category"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, skus)
}

// ListCategories handles listing the distinct categories
func (h *SkuHandler) ListCategories(c echo.Context) error {
	categories, err := h.skuUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories)
}

// GetSkuLabel handles rendering the QR label of a SKU as PNG
func (h *SkuHandler) GetSkuLabel(c echo.Context) error {
	id, ok := parseSkuID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid SKU ID")
	}

	png, err := h.skuUC.GenerateLabel(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="sku-`+strconv.FormatInt(id, 10)+`.png"`)

	return c.Blob(http.StatusOK, "image/png", png)
}

// GetSkuHistory handles listing the recorded changes of a SKU
func (h *SkuHandler) GetSkuHistory(c echo.Context) error {
	id, ok := parseSkuID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid SKU ID")
	}

	records, err := h.auditUC.ListSkuHistory(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records)
}

// CreateSku handles adding a SKU to the catalog
func (h *SkuHandler) CreateSku(c echo.Context) error {
	var req SkuRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid SKU input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", validator.Details(err))
	}

	sku, err := h.skuUC.CreateSku(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, sku)
}

// UpdateSku handles replacing the fields of a SKU
func (h *SkuHandler) UpdateSku(c echo.Context) error {
	id, ok := parseSkuID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid SKU ID")
	}

	var req SkuRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid SKU input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", validator.Details(err))
	}

	sku, err := h.skuUC.UpdateSku(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sku)
}

// DeleteSku handles removing a SKU
func (h *SkuHandler) DeleteSku(c echo.Context) error {
	id, ok := parseSkuID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid SKU ID")
	}

	if err := h.skuUC.DeleteSku(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"deleted": true})
}

func parseSkuID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

// pathParam returns the unescaped value of a path parameter.
func pathParam(c echo.Context, name string) string {
	raw := c.Param(name)
	if value, err := url.PathUnescape(raw); err == nil {
		return value
	}

	return raw
}
