package model

// All lists every model in dependency order for AutoMigrate.
func All() []any {
	return []any{
		&CategoryModel{},
		&SubCategoryModel{},
		&ProductModel{},
		&ProductSubCategoryModel{},
		&ProductAttributeModel{},
		&ProductSkuModel{},
		&UserModel{},
		&CartModel{},
		&CartItemModel{},
		&OrderDetailsModel{},
		&OrderItemModel{},
		&PaymentDetailsModel{},
		&WishlistModel{},
		&WishListItemModel{},
		&ReviewModel{},
	}
}
