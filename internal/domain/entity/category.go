package entity

import (
	"time"

	"storefront/internal/domain/validation"

	"github.com/google/uuid"
)

// Category groups subcategories of the catalog.
type Category struct {
	ID          uuid.UUID  `json:"id"`          // Surrogate identifier assigned on first save.
	Name        string     `json:"name"`        // Display name, e.g. "Art".
	Description string     `json:"description"` // Free-text description.
	CreatedAt   time.Time  `json:"created_at"`  // Retained across updates.
	UpdatedAt   time.Time  `json:"updated_at"`  // Set on every update.
	DeletedAt   *time.Time `json:"deleted_at"`  // Soft-delete marker; nil while active.
}

// CategoryParams carries the fields accepted on creation.
type CategoryParams struct {
	Name        string
	Description string
}

// CategoryPatch carries the fields a caller may override on update.
type CategoryPatch struct {
	Name        *string
	Description *string
}

// NewCategory validates params and builds an active category.
func NewCategory(p CategoryParams, now time.Time) (*Category, error) {
	c := &Category{
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks the category's required fields.
func (c *Category) Validate() error {
	return validation.Check(
		validation.NotBlank("name", "name", c.Name),
		validation.NotBlank("description", "description", c.Description),
	)
}

// Apply returns a copy of c with the patch overlaid.
func (c Category) Apply(p CategoryPatch, now time.Time) Category {
	next := c
	next.Name = Override(c.Name, p.Name)
	next.Description = Override(c.Description, p.Description)
	next.UpdatedAt = now

	return next
}

// MarkDeleted returns a copy of c carrying the soft-delete marker.
func (c Category) MarkDeleted(now time.Time) Category {
	next := c
	next.DeletedAt = &now
	next.UpdatedAt = now

	return next
}

// SubCategory belongs to exactly one Category and tags products.
type SubCategory struct {
	ID          uuid.UUID `json:"id"`
	CategoryID  uuid.UUID `json:"category_id"` // Owning side of the Category relation.
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SubCategoryParams carries the fields accepted on creation.
type SubCategoryParams struct {
	CategoryID  uuid.UUID
	Name        string
	Description string
}

// SubCategoryPatch carries the fields a caller may override on update.
type SubCategoryPatch struct {
	CategoryID  *uuid.UUID
	Name        *string
	Description *string
}

// NewSubCategory validates params and builds a subcategory.
func NewSubCategory(p SubCategoryParams, now time.Time) (*SubCategory, error) {
	s := &SubCategory{
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate checks the subcategory's required fields.
func (s *SubCategory) Validate() error {
	return validation.Check(
		validation.NotZeroID("categoryId", "category", s.CategoryID),
		validation.NotBlank("name", "name", s.Name),
		validation.NotBlank("description", "description", s.Description),
	)
}

// Apply returns a copy of s with the patch overlaid.
func (s SubCategory) Apply(p SubCategoryPatch, now time.Time) SubCategory {
	next := s
	next.CategoryID = Override(s.CategoryID, p.CategoryID)
	next.Name = Override(s.Name, p.Name)
	next.Description = Override(s.Description, p.Description)
	next.UpdatedAt = now

	return next
}
