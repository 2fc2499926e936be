package handler

import (
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CategoryHandler serves categories and subcategories.
type CategoryHandler struct {
	categories    usecase.CategoryUsecase
	subCategories usecase.SubCategoryUsecase
}

// NewCategoryHandler is the constructor for CategoryHandler, injected by Fx.
func NewCategoryHandler(categories usecase.CategoryUsecase, subCategories usecase.SubCategoryUsecase) *CategoryHandler {
	return &CategoryHandler{categories: categories, subCategories: subCategories}
}

type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type categoryPatchRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type subCategoryRequest struct {
	CategoryID  uuid.UUID `json:"category_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

type subCategoryPatchRequest struct {
	CategoryID  *uuid.UUID `json:"category_id"`
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
}

func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req categoryRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	category, err := h.categories.Create(c.Request().Context(), entity.CategoryParams{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return created(c, category)
}

func (h *CategoryHandler) GetCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	category, err := h.categories.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, category)
}

func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req categoryPatchRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	category, err := h.categories.Update(c.Request().Context(), id, entity.CategoryPatch{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, category)
}

func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.categories.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return noContent(c)
}

func (h *CategoryHandler) SoftDeleteCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	category, err := h.categories.SoftDelete(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, category)
}

func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categories.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, categories)
}

func (h *CategoryHandler) FindCategoriesByName(c echo.Context) error {
	categories, err := h.categories.FindByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, categories)
}

func (h *CategoryHandler) FindCategoriesByNameContaining(c echo.Context) error {
	categories, err := h.categories.FindByNameContaining(c.Request().Context(), c.Param("keyword"))
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, categories)
}

func (h *CategoryHandler) FindCategoriesByDescriptionContaining(c echo.Context) error {
	categories, err := h.categories.FindByDescriptionContaining(c.Request().Context(), c.Param("keyword"))
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, categories)
}

func (h *CategoryHandler) FindCategoriesCreatedAfter(c echo.Context) error {
	after, err := pathTime(c, "date")
	if err != nil {
		return err
	}

	categories, err := h.categories.FindCreatedAfter(c.Request().Context(), after)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, categories)
}

// FindCategoriesCreatedBetween reads the inclusive range from ?from=&to=.
func (h *CategoryHandler) FindCategoriesCreatedBetween(c echo.Context) error {
	from, err := queryTime(c, "from")
	if err != nil {
		return err
	}
	to, err := queryTime(c, "to")
	if err != nil {
		return err
	}

	categories, err := h.categories.FindCreatedBetween(c.Request().Context(), from, to)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, categories)
}

func (h *CategoryHandler) MostRecentCategory(c echo.Context) error {
	category, err := h.categories.FindMostRecent(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, category)
}

func (h *CategoryHandler) DeletedCategories(c echo.Context) error {
	categories, err := h.categories.FindDeleted(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, categories)
}

func (h *CategoryHandler) CreateSubCategory(c echo.Context) error {
	var req subCategoryRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	sub, err := h.subCategories.Create(c.Request().Context(), entity.SubCategoryParams{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return created(c, sub)
}

func (h *CategoryHandler) GetSubCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	sub, err := h.subCategories.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, sub)
}

func (h *CategoryHandler) UpdateSubCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req subCategoryPatchRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	sub, err := h.subCategories.Update(c.Request().Context(), id, entity.SubCategoryPatch{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, sub)
}

func (h *CategoryHandler) DeleteSubCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.subCategories.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return noContent(c)
}

// ListSubCategories filters by ?category_id= when present.
func (h *CategoryHandler) ListSubCategories(c echo.Context) error {
	ctx := c.Request().Context()

	var subs []*entity.SubCategory
	categoryID, filtered, err := queryID(c, "category_id")
	if err != nil {
		return err
	}
	if filtered {
		subs, err = h.subCategories.FindByCategoryID(ctx, categoryID)
	} else {
		subs, err = h.subCategories.List(ctx)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, subs)
}
