package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type categoryRepository struct {
	crudRepository[entity.Category, model.CategoryModel]
}

// NewCategoryRepository creates a category store on db.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{crudRepository[entity.Category, model.CategoryModel]{
		db:         db,
		name:       "category",
		toEntity:   toCategoryEntity,
		toModel:    fromCategoryEntity,
		softDelete: true,
	}}
}

func (r *categoryRepository) FindByName(ctx context.Context, name string) ([]*entity.Category, error) {
	return r.find(ctx, "find by name", r.active, func(db *gorm.DB) *gorm.DB {
		return db.Where("name = ?", name)
	})
}

func (r *categoryRepository) FindByNameContaining(ctx context.Context, fragment string) ([]*entity.Category, error) {
	return r.find(ctx, "find by name", r.active, func(db *gorm.DB) *gorm.DB {
		return db.Where("name LIKE ?", "%"+fragment+"%")
	})
}

func (r *categoryRepository) FindByDescriptionContaining(ctx context.Context, fragment string) ([]*entity.Category, error) {
	return r.find(ctx, "find by description", r.active, func(db *gorm.DB) *gorm.DB {
		return db.Where("description LIKE ?", "%"+fragment+"%")
	})
}

func (r *categoryRepository) FindCreatedAfter(ctx context.Context, t time.Time) ([]*entity.Category, error) {
	return r.find(ctx, "find created after", r.active, createdAfter(t))
}

func (r *categoryRepository) FindCreatedBetween(ctx context.Context, from, to time.Time) ([]*entity.Category, error) {
	return r.find(ctx, "find created between", r.active, createdBetween(from, to))
}

func (r *categoryRepository) FindMostRecent(ctx context.Context) (*entity.Category, error) {
	return r.first(ctx, "find most recent", r.active, func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC")
	})
}

func (r *categoryRepository) FindDeleted(ctx context.Context) ([]*entity.Category, error) {
	return r.find(ctx, "find deleted", func(db *gorm.DB) *gorm.DB {
		return db.Where("deleted_at IS NOT NULL")
	})
}

func toCategoryEntity(m *model.CategoryModel) *entity.Category {
	return &entity.Category{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   m.DeletedAt,
	}
}

func fromCategoryEntity(c *entity.Category) *model.CategoryModel {
	return &model.CategoryModel{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		DeletedAt:   c.DeletedAt,
	}
}

type subCategoryRepository struct {
	crudRepository[entity.SubCategory, model.SubCategoryModel]
}

// NewSubCategoryRepository creates a subcategory store on db.
func NewSubCategoryRepository(db *gorm.DB) repository.SubCategoryRepository {
	return &subCategoryRepository{crudRepository[entity.SubCategory, model.SubCategoryModel]{
		db:   db,
		name: "subcategory",
		toEntity: func(m *model.SubCategoryModel) *entity.SubCategory {
			return &entity.SubCategory{
				ID:          m.ID,
				CategoryID:  m.CategoryID,
				Name:        m.Name,
				Description: m.Description,
				CreatedAt:   m.CreatedAt,
				UpdatedAt:   m.UpdatedAt,
			}
		},
		toModel: func(s *entity.SubCategory) *model.SubCategoryModel {
			return &model.SubCategoryModel{
				ID:          s.ID,
				CategoryID:  s.CategoryID,
				Name:        s.Name,
				Description: s.Description,
				CreatedAt:   s.CreatedAt,
				UpdatedAt:   s.UpdatedAt,
			}
		},
	}}
}

func (r *subCategoryRepository) FindByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]*entity.SubCategory, error) {
	return r.find(ctx, "find by category", func(db *gorm.DB) *gorm.DB {
		return db.Where("category_id = ?", categoryID)
	})
}

// productRepository keeps product_sub_categories in step with Product.SubCategoryIDs.
type productRepository struct {
	crudRepository[entity.Product, model.ProductModel]
}

// NewProductRepository creates a product store on db.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{crudRepository[entity.Product, model.ProductModel]{
		db:         db,
		name:       "product",
		toEntity:   toProductEntity,
		toModel:    fromProductEntity,
		softDelete: true,
	}}
}

// Save writes the product row and replaces its subcategory tags in one transaction.
func (r *productRepository) Save(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	m := fromProductEntity(p)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(m).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", m.ID).Delete(&model.ProductSubCategoryModel{}).Error; err != nil {
			return err
		}
		if len(p.SubCategoryIDs) == 0 {
			return nil
		}

		links := make([]model.ProductSubCategoryModel, 0, len(p.SubCategoryIDs))
		for _, id := range uniqueIDs(p.SubCategoryIDs) {
			links = append(links, model.ProductSubCategoryModel{ProductID: m.ID, SubCategoryID: id})
		}

		return tx.Omit(clause.Associations).Create(&links).Error
	})
	if err != nil {
		return nil, r.translate(err, "save")
	}

	saved := toProductEntity(m)
	saved.SubCategoryIDs = uniqueIDs(p.SubCategoryIDs)

	return saved, nil
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	p, err := r.crudRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.attachSubCategories(ctx, []*entity.Product{p}); err != nil {
		return nil, err
	}

	return p, nil
}

// DeleteByID removes the product's subcategory tags together with the row.
func (r *productRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&model.ProductSubCategoryModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.ProductModel{})
		affected = result.RowsAffected

		return result.Error
	})
	if err != nil {
		return r.translate(err, "delete by id")
	}
	if affected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

func (r *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	products, err := r.crudRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.attachSubCategories(ctx, products); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) FindBySubCategoryID(ctx context.Context, subCategoryID uuid.UUID) ([]*entity.Product, error) {
	products, err := r.find(ctx, "find by subcategory", r.active, func(db *gorm.DB) *gorm.DB {
		return db.Where("id IN (?)", r.db.
			Model(&model.ProductSubCategoryModel{}).
			Select("product_id").
			Where("sub_category_id = ?", subCategoryID))
	})
	if err != nil {
		return nil, err
	}
	if err := r.attachSubCategories(ctx, products); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) attachSubCategories(ctx context.Context, products []*entity.Product) error {
	if len(products) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*entity.Product, len(products))
	ids := make([]uuid.UUID, 0, len(products))
	for _, p := range products {
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}

	var links []model.ProductSubCategoryModel
	if err := r.db.WithContext(ctx).Where("product_id IN ?", ids).Find(&links).Error; err != nil {
		return r.translate(err, "load subcategories")
	}
	for _, link := range links {
		p := byID[link.ProductID]
		p.SubCategoryIDs = append(p.SubCategoryIDs, link.SubCategoryID)
	}

	return nil
}

func toProductEntity(m *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Summary:     m.Summary,
		Cover:       m.Cover,
		ImageUrls: entity.ImageUrls{
			ImageURL1: m.ImageURL1,
			ImageURL2: m.ImageURL2,
			ImageURL3: m.ImageURL3,
			ImageURL4: m.ImageURL4,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: m.DeletedAt,
	}
}

func fromProductEntity(p *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Summary:     p.Summary,
		Cover:       p.Cover,
		ImageURL1:   p.ImageUrls.ImageURL1,
		ImageURL2:   p.ImageUrls.ImageURL2,
		ImageURL3:   p.ImageUrls.ImageURL3,
		ImageURL4:   p.ImageUrls.ImageURL4,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		DeletedAt:   p.DeletedAt,
	}
}

type productAttributeRepository struct {
	crudRepository[entity.ProductAttribute, model.ProductAttributeModel]
}

// NewProductAttributeRepository creates an attribute store on db.
func NewProductAttributeRepository(db *gorm.DB) repository.ProductAttributeRepository {
	return &productAttributeRepository{crudRepository[entity.ProductAttribute, model.ProductAttributeModel]{
		db:       db,
		name:     "product attribute",
		toEntity: toAttributeEntity,
		toModel: func(a *entity.ProductAttribute) *model.ProductAttributeModel {
			return &model.ProductAttributeModel{
				ID:        a.ID,
				Type:      a.Type.String(),
				Value:     a.Value,
				CreatedAt: a.CreatedAt,
				UpdatedAt: a.UpdatedAt,
			}
		},
	}}
}

func (r *productAttributeRepository) FindByType(ctx context.Context, attrType entity.AttributeType) ([]*entity.ProductAttribute, error) {
	return r.find(ctx, "find by type", func(db *gorm.DB) *gorm.DB {
		return db.Where("type = ?", attrType.String())
	})
}

func toAttributeEntity(m *model.ProductAttributeModel) *entity.ProductAttribute {
	return &entity.ProductAttribute{
		ID:        m.ID,
		Type:      entity.AttributeType(m.Type),
		Value:     m.Value,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// productSkuRepository preloads the three attributes so AttributeRef carries
// the stored type and value.
type productSkuRepository struct {
	crudRepository[entity.ProductSku, model.ProductSkuModel]
}

// NewProductSkuRepository creates a SKU store on db.
func NewProductSkuRepository(db *gorm.DB) repository.ProductSkuRepository {
	return &productSkuRepository{crudRepository[entity.ProductSku, model.ProductSkuModel]{
		db:         db,
		name:       "product sku",
		toEntity:   toSkuEntity,
		toModel:    fromSkuEntity,
		softDelete: true,
		preloads:   []string{"SizeAttribute", "ColorAttribute", "BrandAttribute"},
		duplicate:  domainerrors.ErrSkuAlreadyExists,
	}}
}

// Save writes the row and reloads it with its attributes.
func (r *productSkuRepository) Save(ctx context.Context, sku *entity.ProductSku) (*entity.ProductSku, error) {
	saved, err := r.crudRepository.Save(ctx, sku)
	if err != nil {
		return nil, err
	}

	return r.FindByID(ctx, saved.ID)
}

func (r *productSkuRepository) FindByProductID(ctx context.Context, productID uuid.UUID) ([]*entity.ProductSku, error) {
	return r.find(ctx, "find by product", r.active, func(db *gorm.DB) *gorm.DB {
		return db.Where("product_id = ?", productID)
	})
}

func (r *productSkuRepository) FindBySku(ctx context.Context, sku string) (*entity.ProductSku, error) {
	return r.first(ctx, "find by sku", func(db *gorm.DB) *gorm.DB {
		return db.Where("sku = ?", sku)
	})
}

func (r *productSkuRepository) FindIDsByAttributeID(ctx context.Context, attributeID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(new(model.ProductSkuModel)).
		Where("size_attribute_id = ? OR color_attribute_id = ? OR brand_attribute_id = ?", attributeID, attributeID, attributeID).
		Order("created_at ASC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, r.translate(err, "find by attribute")
	}

	return ids, nil
}

func toSkuEntity(m *model.ProductSkuModel) *entity.ProductSku {
	return &entity.ProductSku{
		ID:        m.ID,
		ProductID: m.ProductID,
		Size:      attributeRef(m.SizeAttributeID, m.SizeAttribute),
		Color:     attributeRef(m.ColorAttributeID, m.ColorAttribute),
		Brand:     attributeRef(m.BrandAttributeID, m.BrandAttribute),
		Sku:       m.Sku,
		Price:     m.Price,
		Quantity:  m.Quantity,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: m.DeletedAt,
	}
}

func fromSkuEntity(s *entity.ProductSku) *model.ProductSkuModel {
	return &model.ProductSkuModel{
		ID:               s.ID,
		ProductID:        s.ProductID,
		SizeAttributeID:  s.Size.ID,
		ColorAttributeID: s.Color.ID,
		BrandAttributeID: s.Brand.ID,
		Sku:              s.Sku,
		Price:            s.Price,
		Quantity:         s.Quantity,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
		DeletedAt:        s.DeletedAt,
	}
}

func attributeRef(id uuid.UUID, m *model.ProductAttributeModel) entity.AttributeRef {
	if m == nil {
		return entity.AttributeRef{ID: id}
	}

	return entity.AttributeRef{ID: id, Type: entity.AttributeType(m.Type), Value: m.Value}
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
