package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// assignID gives a new row its surrogate key; rows with an ID keep it.
func assignID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func (m *CategoryModel) BeforeCreate(*gorm.DB) error         { assignID(&m.ID); return nil }
func (m *SubCategoryModel) BeforeCreate(*gorm.DB) error      { assignID(&m.ID); return nil }
func (m *ProductModel) BeforeCreate(*gorm.DB) error          { assignID(&m.ID); return nil }
func (m *ProductAttributeModel) BeforeCreate(*gorm.DB) error { assignID(&m.ID); return nil }
func (m *ProductSkuModel) BeforeCreate(*gorm.DB) error       { assignID(&m.ID); return nil }
func (m *UserModel) BeforeCreate(*gorm.DB) error             { assignID(&m.ID); return nil }
func (m *CartModel) BeforeCreate(*gorm.DB) error             { assignID(&m.ID); return nil }
func (m *CartItemModel) BeforeCreate(*gorm.DB) error         { assignID(&m.ID); return nil }
func (m *OrderDetailsModel) BeforeCreate(*gorm.DB) error     { assignID(&m.ID); return nil }
func (m *OrderItemModel) BeforeCreate(*gorm.DB) error        { assignID(&m.ID); return nil }
func (m *PaymentDetailsModel) BeforeCreate(*gorm.DB) error   { assignID(&m.ID); return nil }
func (m *WishlistModel) BeforeCreate(*gorm.DB) error         { assignID(&m.ID); return nil }
func (m *WishListItemModel) BeforeCreate(*gorm.DB) error     { assignID(&m.ID); return nil }
func (m *ReviewModel) BeforeCreate(*gorm.DB) error           { assignID(&m.ID); return nil }
