package handler

import (
	"net/http"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ProductHandler serves products, product attributes and SKUs.
type ProductHandler struct {
	products   usecase.ProductUsecase
	attributes usecase.ProductAttributeUsecase
	skus       usecase.ProductSkuUsecase
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(
	products usecase.ProductUsecase,
	attributes usecase.ProductAttributeUsecase,
	skus usecase.ProductSkuUsecase,
) *ProductHandler {
	return &ProductHandler{products: products, attributes: attributes, skus: skus}
}

type productRequest struct {
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	Summary        string           `json:"summary"`
	Cover          string           `json:"cover"`
	ImageUrls      entity.ImageUrls `json:"image_urls"`
	SubCategoryIDs []uuid.UUID      `json:"sub_category_ids"`
}

type productPatchRequest struct {
	Name           *string           `json:"name"`
	Description    *string           `json:"description"`
	Summary        *string           `json:"summary"`
	Cover          *string           `json:"cover"`
	ImageUrls      *entity.ImageUrls `json:"image_urls"`
	SubCategoryIDs *[]uuid.UUID      `json:"sub_category_ids"`
}

type attributeRequest struct {
	Type  entity.AttributeType `json:"type"`
	Value string               `json:"value"`
}

type attributePatchRequest struct {
	Type  *entity.AttributeType `json:"type"`
	Value *string               `json:"value"`
}

type skuRequest struct {
	ProductID        uuid.UUID       `json:"product_id"`
	SizeAttributeID  uuid.UUID       `json:"size_attribute_id"`
	ColorAttributeID uuid.UUID       `json:"color_attribute_id"`
	BrandAttributeID uuid.UUID       `json:"brand_attribute_id"`
	Sku              string          `json:"sku"`
	Price            decimal.Decimal `json:"price"`
	Quantity         int             `json:"quantity"`
}

type labelScanRequest struct {
	Payload string `json:"payload" validate:"required"`
}

type skuPatchRequest struct {
	ProductID        *uuid.UUID       `json:"product_id"`
	SizeAttributeID  *uuid.UUID       `json:"size_attribute_id"`
	ColorAttributeID *uuid.UUID       `json:"color_attribute_id"`
	BrandAttributeID *uuid.UUID       `json:"brand_attribute_id"`
	Sku              *string          `json:"sku"`
	Price            *decimal.Decimal `json:"price"`
	Quantity         *int             `json:"quantity"`
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	product, err := h.products.Create(c.Request().Context(), entity.ProductParams{
		Name:           req.Name,
		Description:    req.Description,
		Summary:        req.Summary,
		Cover:          req.Cover,
		ImageUrls:      req.ImageUrls,
		SubCategoryIDs: req.SubCategoryIDs,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return created(c, product)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.products.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req productPatchRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	product, err := h.products.Update(c.Request().Context(), id, entity.ProductPatch{
		Name:           req.Name,
		Description:    req.Description,
		Summary:        req.Summary,
		Cover:          req.Cover,
		ImageUrls:      req.ImageUrls,
		SubCategoryIDs: req.SubCategoryIDs,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.products.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return noContent(c)
}

func (h *ProductHandler) SoftDeleteProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.products.SoftDelete(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, product)
}

// ListProducts filters by ?sub_category_id= when present.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()
	subCategoryID, filtered, err := queryID(c, "sub_category_id")
	if err != nil {
		return err
	}

	var products []*entity.Product
	if filtered {
		products, err = h.products.FindBySubCategoryID(ctx, subCategoryID)
	} else {
		products, err = h.products.List(ctx)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, products)
}

func (h *ProductHandler) CreateAttribute(c echo.Context) error {
	var req attributeRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	attr, err := h.attributes.Create(c.Request().Context(), entity.ProductAttributeParams{
		Type:  req.Type,
		Value: req.Value,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return created(c, attr)
}

func (h *ProductHandler) GetAttribute(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	attr, err := h.attributes.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, attr)
}

func (h *ProductHandler) UpdateAttribute(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req attributePatchRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	attr, err := h.attributes.Update(c.Request().Context(), id, entity.ProductAttributePatch{
		Type:  req.Type,
		Value: req.Value,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, attr)
}

func (h *ProductHandler) DeleteAttribute(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.attributes.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return noContent(c)
}

// ListAttributes filters by ?type=SIZE|COLOR|BRAND when present.
func (h *ProductHandler) ListAttributes(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		attrs []*entity.ProductAttribute
		err   error
	)
	if raw := c.QueryParam("type"); raw != "" {
		attrType := entity.AttributeType(raw)
		if !attrType.IsValid() {
			return invalidParam("type")
		}
		attrs, err = h.attributes.FindByType(ctx, attrType)
	} else {
		attrs, err = h.attributes.List(ctx)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, attrs)
}

func (h *ProductHandler) CreateSku(c echo.Context) error {
	var req skuRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	sku, err := h.skus.Create(c.Request().Context(), usecase.CreateSkuInput{
		ProductID:        req.ProductID,
		SizeAttributeID:  req.SizeAttributeID,
		ColorAttributeID: req.ColorAttributeID,
		BrandAttributeID: req.BrandAttributeID,
		Sku:              req.Sku,
		Price:            req.Price,
		Quantity:         req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return created(c, sku)
}

func (h *ProductHandler) GetSku(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	sku, err := h.skus.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, sku)
}

func (h *ProductHandler) UpdateSku(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req skuPatchRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	sku, err := h.skus.Update(c.Request().Context(), id, usecase.UpdateSkuInput{
		ProductID:        req.ProductID,
		SizeAttributeID:  req.SizeAttributeID,
		ColorAttributeID: req.ColorAttributeID,
		BrandAttributeID: req.BrandAttributeID,
		Sku:              req.Sku,
		Price:            req.Price,
		Quantity:         req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, sku)
}

func (h *ProductHandler) DeleteSku(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.skus.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return noContent(c)
}

func (h *ProductHandler) SoftDeleteSku(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	sku, err := h.skus.SoftDelete(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, sku)
}

// ListSkus filters by ?product_id= when present.
func (h *ProductHandler) ListSkus(c echo.Context) error {
	ctx := c.Request().Context()
	productID, filtered, err := queryID(c, "product_id")
	if err != nil {
		return err
	}

	var skus []*entity.ProductSku
	if filtered {
		skus, err = h.skus.FindByProductID(ctx, productID)
	} else {
		skus, err = h.skus.List(ctx)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, skus)
}

func (h *ProductHandler) FindSkuByCode(c echo.Context) error {
	sku, err := h.skus.FindBySku(c.Request().Context(), c.Param("sku"))
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, sku)
}

// SkuLabel renders the SKU's QR label as image/png.
func (h *ProductHandler) SkuLabel(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.skus.Label(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ScanSkuLabel looks up the SKU encoded in a scanned label.
func (h *ProductHandler) ScanSkuLabel(c echo.Context) error {
	var req labelScanRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	sku, err := h.skus.FindByLabel(c.Request().Context(), req.Payload)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, sku)
}
