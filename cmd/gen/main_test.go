package main

import (
	"testing"

	"storefront/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"gorm.io/gen"
)

func TestGeneratorConfig(t *testing.T) {
	cfg := generatorConfig(defaultOutPath)

	assert.Equal(t, defaultOutPath, cfg.OutPath)
	assert.NotZero(t, cfg.Mode&gen.WithDefaultQuery)
	assert.NotZero(t, cfg.Mode&gen.WithQueryInterface)
	assert.Zero(t, cfg.Mode&gen.WithoutContext)
	assert.True(t, cfg.FieldNullable)
}

func TestGeneratorCoversEveryTable(t *testing.T) {
	models := model.All()

	assert.Len(t, models, 15)
	assert.Contains(t, models, &model.PaymentDetailsModel{})
	assert.Contains(t, models, &model.ProductSkuModel{})
}
