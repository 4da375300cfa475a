package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/xero-gateway/internal/domain"
	"github.com/jhoicas/xero-gateway/internal/domain/entity"
)

func TestNewItemFromFields(t *testing.T) {
	it, err := entity.NewItemFromFields(map[string]any{
		"code":        "WID-1",
		"name":        "Widget",
		"description": "Blue widget",
		"sales_details": map[string]string{
			entity.SalesUnitPrice:   "12.50",
			entity.SalesAccountCode: "200",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "WID-1", it.Code)
	assert.Equal(t, "12.50", it.UnitPrice())
	assert.Equal(t, "200", it.AccountCode())
}

func TestNewItem_SalesDetailsVacio(t *testing.T) {
	it := entity.NewItem()
	require.NotNil(t, it.SalesDetails)
	assert.Empty(t, it.SalesDetails)
	assert.Empty(t, it.UnitPrice())
}

func TestNewItemFromFields_CampoDesconocido(t *testing.T) {
	it, err := entity.NewItemFromFields(map[string]any{"price": "1"})
	assert.Nil(t, it)
	var uErr *domain.UnknownFieldError
	require.ErrorAs(t, err, &uErr)
	assert.Equal(t, "Item", uErr.Record)
	assert.Equal(t, "price", uErr.Field)
}
