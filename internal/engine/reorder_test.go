package engine

import (
	"testing"

	"supplysight/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inventoryFor(productID uuid.UUID, available int) *models.Inventory {
	return &models.Inventory{
		ID:                uuid.New(),
		ProductID:         productID,
		AvailableQuantity: available,
	}
}

func forecastFor(productID uuid.UUID, predicted, recommended int) *models.DemandForecast {
	return &models.DemandForecast{
		ID:                  uuid.New(),
		ProductID:           productID,
		PredictedDemand:     predicted,
		RecommendedOrderQty: recommended,
	}
}

func TestReorderSuggestions_HighUrgency(t *testing.T) {
	product := testProduct(50, 20)

	// 20 units against 100/month demand: 6 days of stock.
	suggestions := ReorderSuggestions(
		[]*models.Inventory{inventoryFor(product.ID, 20)},
		[]*models.Product{product},
		[]*models.DemandForecast{forecastFor(product.ID, 100, 120)},
	)

	require.Len(t, suggestions, 1)
	s := suggestions[0]
	assert.Equal(t, product, s.Product)
	assert.Equal(t, 20, s.CurrentStock)
	assert.Equal(t, 100, s.ForecastedDemand)
	assert.Equal(t, 120, s.SuggestedOrderQty)
	assert.Equal(t, UrgencyHigh, s.Urgency)
	assert.Equal(t, "6 days of stock remaining. Immediate action required.", s.Reasoning)
}

func TestReorderSuggestions_MediumUrgency(t *testing.T) {
	product := testProduct(50, 20)

	// 40 units against 100/month demand: 12 days of stock.
	suggestions := ReorderSuggestions(
		[]*models.Inventory{inventoryFor(product.ID, 40)},
		[]*models.Product{product},
		[]*models.DemandForecast{forecastFor(product.ID, 100, 120)},
	)

	require.Len(t, suggestions, 1)
	assert.Equal(t, UrgencyMedium, suggestions[0].Urgency)
	assert.Equal(t, "12 days of stock remaining.", suggestions[0].Reasoning)
}

func TestReorderSuggestions_LowUrgencyFiltered(t *testing.T) {
	product := testProduct(50, 20)

	// 200 units against 100/month demand: 60 days of stock.
	suggestions := ReorderSuggestions(
		[]*models.Inventory{inventoryFor(product.ID, 200)},
		[]*models.Product{product},
		[]*models.DemandForecast{forecastFor(product.ID, 100, 120)},
	)

	assert.Empty(t, suggestions)
}

func TestReorderSuggestions_NeverLowUrgency(t *testing.T) {
	products := make([]*models.Product, 0, 20)
	inventories := make([]*models.Inventory, 0, 20)
	forecasts := make([]*models.DemandForecast, 0, 20)
	for i := 0; i < 20; i++ {
		p := testProduct(50, 20)
		products = append(products, p)
		inventories = append(inventories, inventoryFor(p.ID, i*15))
		forecasts = append(forecasts, forecastFor(p.ID, 100, 120))
	}

	for _, s := range ReorderSuggestions(inventories, products, forecasts) {
		assert.NotEqual(t, UrgencyLow, s.Urgency)
	}
}

func TestReorderSuggestions_MissingInventoryDefaultsToZero(t *testing.T) {
	product := testProduct(50, 20)

	suggestions := ReorderSuggestions(
		nil,
		[]*models.Product{product},
		[]*models.DemandForecast{forecastFor(product.ID, 100, 120)},
	)

	require.Len(t, suggestions, 1)
	assert.Equal(t, 0, suggestions[0].CurrentStock)
	assert.Equal(t, UrgencyHigh, suggestions[0].Urgency)
}

func TestReorderSuggestions_MissingForecastDefaultsToReorderPoint(t *testing.T) {
	product := testProduct(60, 20)

	suggestions := ReorderSuggestions(
		[]*models.Inventory{inventoryFor(product.ID, 10)},
		[]*models.Product{product},
		nil,
	)

	// 10 units against 60/month default demand: 5 days of stock.
	require.Len(t, suggestions, 1)
	assert.Equal(t, 60, suggestions[0].ForecastedDemand)
	assert.Equal(t, 60, suggestions[0].SuggestedOrderQty)
	assert.Equal(t, UrgencyHigh, suggestions[0].Urgency)
}

func TestReorderSuggestions_ZeroDemandNeverUrgent(t *testing.T) {
	product := testProduct(0, 0)

	suggestions := ReorderSuggestions(
		[]*models.Inventory{inventoryFor(product.ID, 0)},
		[]*models.Product{product},
		[]*models.DemandForecast{forecastFor(product.ID, 0, 0)},
	)

	assert.Empty(t, suggestions)
}

func TestReorderSuggestions_PreservesProductOrder(t *testing.T) {
	first := testProduct(50, 20)
	second := testProduct(50, 20)

	suggestions := ReorderSuggestions(
		[]*models.Inventory{inventoryFor(second.ID, 5), inventoryFor(first.ID, 5)},
		[]*models.Product{first, second},
		[]*models.DemandForecast{forecastFor(first.ID, 100, 120), forecastFor(second.ID, 100, 120)},
	)

	require.Len(t, suggestions, 2)
	assert.Equal(t, first.ID, suggestions[0].Product.ID)
	assert.Equal(t, second.ID, suggestions[1].Product.ID)
}
