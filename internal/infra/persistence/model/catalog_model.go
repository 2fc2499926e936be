// Package model holds the GORM persistence structs. They mirror the tables
// one-to-one and never leave the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"type:varchar(255);not null;index"`
	Description string     `gorm:"type:text;not null"`
	CreatedAt   time.Time  `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt   time.Time  `gorm:"not null;autoUpdateTime:false"`
	DeletedAt   *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// SubCategoryModel mirrors the 'sub_categories' table. Category is declared
// only so AutoMigrate emits the foreign key.
type SubCategoryModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CategoryID  uuid.UUID      `gorm:"type:uuid;not null;index"`
	Category    *CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	Name        string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:text;not null"`
	CreatedAt   time.Time      `gorm:"not null;autoCreateTime:false"`
	UpdatedAt   time.Time      `gorm:"not null;autoUpdateTime:false"`
}

// TableName explicitly sets the table name for GORM.
func (SubCategoryModel) TableName() string {
	return "sub_categories"
}

// ProductModel mirrors the 'products' table; subcategory tags live in
// 'product_sub_categories'.
type ProductModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text;not null"`
	Summary     string     `gorm:"type:text;not null"`
	Cover       string     `gorm:"type:varchar(1024);not null"`
	ImageURL1   string     `gorm:"column:image_url_1;type:varchar(1024)"`
	ImageURL2   string     `gorm:"column:image_url_2;type:varchar(1024)"`
	ImageURL3   string     `gorm:"column:image_url_3;type:varchar(1024)"`
	ImageURL4   string     `gorm:"column:image_url_4;type:varchar(1024)"`
	CreatedAt   time.Time  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt   time.Time  `gorm:"not null;autoUpdateTime:false"`
	DeletedAt   *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductSubCategoryModel mirrors the 'product_sub_categories' join table.
type ProductSubCategoryModel struct {
	ProductID     uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Product       *ProductModel     `gorm:"foreignKey:ProductID"`
	SubCategoryID uuid.UUID         `gorm:"type:uuid;primaryKey;index"`
	SubCategory   *SubCategoryModel `gorm:"foreignKey:SubCategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductSubCategoryModel) TableName() string {
	return "product_sub_categories"
}

// ProductAttributeModel mirrors the 'product_attributes' table.
type ProductAttributeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Type      string    `gorm:"type:varchar(16);not null;index"`
	Value     string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
}

// TableName explicitly sets the table name for GORM.
func (ProductAttributeModel) TableName() string {
	return "product_attributes"
}

// ProductSkuModel mirrors the 'product_skus' table. The attribute and product
// associations are preloaded on reads and omitted on writes.
type ProductSkuModel struct {
	ID               uuid.UUID              `gorm:"type:uuid;primaryKey"`
	ProductID        uuid.UUID              `gorm:"type:uuid;not null;index"`
	Product          *ProductModel          `gorm:"foreignKey:ProductID"`
	SizeAttributeID  uuid.UUID              `gorm:"type:uuid;not null"`
	SizeAttribute    *ProductAttributeModel `gorm:"foreignKey:SizeAttributeID"`
	ColorAttributeID uuid.UUID              `gorm:"type:uuid;not null"`
	ColorAttribute   *ProductAttributeModel `gorm:"foreignKey:ColorAttributeID"`
	BrandAttributeID uuid.UUID              `gorm:"type:uuid;not null"`
	BrandAttribute   *ProductAttributeModel `gorm:"foreignKey:BrandAttributeID"`
	Sku              string                 `gorm:"type:varchar(100);not null;uniqueIndex"`
	Price            decimal.Decimal        `gorm:"type:numeric(12,2);not null"`
	Quantity         int                    `gorm:"not null"`
	CreatedAt        time.Time              `gorm:"not null;autoCreateTime:false"`
	UpdatedAt        time.Time              `gorm:"not null;autoUpdateTime:false"`
	DeletedAt        *time.Time             `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ProductSkuModel) TableName() string {
	return "product_skus"
}
