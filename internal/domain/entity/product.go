package entity

import (
	"slices"
	"time"

	"storefront/internal/domain/validation"

	"github.com/google/uuid"
)

// ImageUrls holds up to four optional gallery images of a product.
type ImageUrls struct {
	ImageURL1 string `json:"image_url_1,omitempty"`
	ImageURL2 string `json:"image_url_2,omitempty"`
	ImageURL3 string `json:"image_url_3,omitempty"`
	ImageURL4 string `json:"image_url_4,omitempty"`
}

// Product is the catalog item that SKUs are variants of.
type Product struct {
	ID             uuid.UUID   `json:"id"`
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	Summary        string      `json:"summary"`
	Cover          string      `json:"cover"` // Cover image reference.
	ImageUrls      ImageUrls   `json:"image_urls"`
	SubCategoryIDs []uuid.UUID `json:"sub_category_ids"` // Many-to-many tags.
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
	DeletedAt      *time.Time  `json:"deleted_at"`
}

// ProductParams carries the fields accepted on creation.
type ProductParams struct {
	Name           string
	Description    string
	Summary        string
	Cover          string
	ImageUrls      ImageUrls
	SubCategoryIDs []uuid.UUID
}

// ProductPatch carries the fields a caller may override on update.
type ProductPatch struct {
	Name           *string
	Description    *string
	Summary        *string
	Cover          *string
	ImageUrls      *ImageUrls
	SubCategoryIDs *[]uuid.UUID
}

// NewProduct validates params and builds an active product.
func NewProduct(p ProductParams, now time.Time) (*Product, error) {
	product := &Product{
		Name:           p.Name,
		Description:    p.Description,
		Summary:        p.Summary,
		Cover:          p.Cover,
		ImageUrls:      p.ImageUrls,
		SubCategoryIDs: slices.Clone(p.SubCategoryIDs),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}

	return product, nil
}

// Validate checks the product's required fields.
func (p *Product) Validate() error {
	return validation.Check(
		validation.NotBlank("name", "name", p.Name),
		validation.NotBlank("description", "description", p.Description),
		validation.NotBlank("summary", "summary", p.Summary),
		validation.NotBlank("cover", "cover", p.Cover),
		validation.NotEmpty("subCategoryIds", "subcategories", p.SubCategoryIDs),
	)
}

// Apply returns a copy of p with the patch overlaid.
func (p Product) Apply(patch ProductPatch, now time.Time) Product {
	next := p
	next.Name = Override(p.Name, patch.Name)
	next.Description = Override(p.Description, patch.Description)
	next.Summary = Override(p.Summary, patch.Summary)
	next.Cover = Override(p.Cover, patch.Cover)
	next.ImageUrls = Override(p.ImageUrls, patch.ImageUrls)
	next.SubCategoryIDs = slices.Clone(Override(p.SubCategoryIDs, patch.SubCategoryIDs))
	next.UpdatedAt = now

	return next
}

// MarkDeleted returns a copy of p carrying the soft-delete marker.
func (p Product) MarkDeleted(now time.Time) Product {
	next := p
	next.SubCategoryIDs = slices.Clone(p.SubCategoryIDs)
	next.DeletedAt = &now
	next.UpdatedAt = now

	return next
}
