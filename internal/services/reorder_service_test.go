package services

import (
	"context"
	"errors"
	"testing"

	"supplysight/internal/engine"
	"supplysight/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReorderServiceTestSuite struct {
	suite.Suite
	mockProductRepo   *MockProductRepository
	mockInventoryRepo *MockInventoryRepository
	mockForecastRepo  *MockForecastRepository
	mockHistory       *MockHistorySource
	service           ReorderService
	ctx               context.Context
}

func (suite *ReorderServiceTestSuite) SetupTest() {
	suite.mockProductRepo = &MockProductRepository{}
	suite.mockInventoryRepo = &MockInventoryRepository{}
	suite.mockForecastRepo = &MockForecastRepository{}
	suite.mockHistory = &MockHistorySource{}
	suite.service = NewReorderService(suite.mockProductRepo, suite.mockInventoryRepo, suite.mockForecastRepo, suite.mockHistory)
	suite.ctx = context.Background()
}

func (suite *ReorderServiceTestSuite) TearDownTest() {
	suite.mockProductRepo.AssertExpectations(suite.T())
	suite.mockInventoryRepo.AssertExpectations(suite.T())
	suite.mockForecastRepo.AssertExpectations(suite.T())
	suite.mockHistory.AssertExpectations(suite.T())
}

func TestReorderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReorderServiceTestSuite))
}

func (suite *ReorderServiceTestSuite) TestSuggestions_UsesStoredForecasts() {
	product := &models.Product{ID: uuid.New(), SKU: "SKU-1001", ReorderPoint: 50, SafetyStock: 20}
	inventory := &models.Inventory{ID: uuid.New(), ProductID: product.ID, AvailableQuantity: 20}
	forecast := &models.DemandForecast{ID: uuid.New(), ProductID: product.ID, PredictedDemand: 100, RecommendedOrderQty: 120}

	suite.mockProductRepo.On("List", mock.Anything, productPageSize, 0).
		Return([]*models.Product{product}, nil).Once()
	suite.mockInventoryRepo.On("List", mock.Anything, inventoryPageSize, 0).
		Return([]*models.Inventory{inventory}, nil).Once()
	suite.mockForecastRepo.On("LatestPerProduct", mock.Anything, mock.Anything).
		Return([]*models.DemandForecast{forecast}, nil).Once()

	suggestions, err := suite.service.Suggestions(suite.ctx)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), suggestions, 1)
	assert.Equal(suite.T(), engine.UrgencyHigh, suggestions[0].Urgency)
	assert.Equal(suite.T(), 120, suggestions[0].SuggestedOrderQty)
}

func (suite *ReorderServiceTestSuite) TestSuggestions_ComputesMissingForecastOnTheFly() {
	product := &models.Product{ID: uuid.New(), SKU: "SKU-1001", ReorderPoint: 50, SafetyStock: 20}
	inventory := &models.Inventory{ID: uuid.New(), ProductID: product.ID, AvailableQuantity: 10}

	suite.mockProductRepo.On("List", mock.Anything, productPageSize, 0).
		Return([]*models.Product{product}, nil).Once()
	suite.mockInventoryRepo.On("List", mock.Anything, inventoryPageSize, 0).
		Return([]*models.Inventory{inventory}, nil).Once()
	suite.mockForecastRepo.On("LatestPerProduct", mock.Anything, mock.Anything).
		Return([]*models.DemandForecast{}, nil).Once()
	suite.mockHistory.On("History", mock.Anything, product.ID, historyWindowDays).
		Return(steadySeries(30, 100), nil).Once()

	suggestions, err := suite.service.Suggestions(suite.ctx)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), suggestions, 1)
	// Flat 100/day series forecasts 100/month: 10 units is 3 days of stock.
	assert.Equal(suite.T(), 100, suggestions[0].ForecastedDemand)
	assert.Equal(suite.T(), engine.UrgencyHigh, suggestions[0].Urgency)
}

func (suite *ReorderServiceTestSuite) TestSuggestions_FallsBackToDefaultsWhenHistoryFails() {
	product := &models.Product{ID: uuid.New(), SKU: "SKU-1001", ReorderPoint: 60, SafetyStock: 20}
	inventory := &models.Inventory{ID: uuid.New(), ProductID: product.ID, AvailableQuantity: 10}

	suite.mockProductRepo.On("List", mock.Anything, productPageSize, 0).
		Return([]*models.Product{product}, nil).Once()
	suite.mockInventoryRepo.On("List", mock.Anything, inventoryPageSize, 0).
		Return([]*models.Inventory{inventory}, nil).Once()
	suite.mockForecastRepo.On("LatestPerProduct", mock.Anything, mock.Anything).
		Return([]*models.DemandForecast{}, nil).Once()
	suite.mockHistory.On("History", mock.Anything, product.ID, historyWindowDays).
		Return(nil, errors.New("history unavailable")).Once()

	suggestions, err := suite.service.Suggestions(suite.ctx)

	assert.NoError(suite.T(), err)
	// The advisor substitutes the reorder point for demand and order quantity.
	assert.Len(suite.T(), suggestions, 1)
	assert.Equal(suite.T(), 60, suggestions[0].ForecastedDemand)
	assert.Equal(suite.T(), 60, suggestions[0].SuggestedOrderQty)
}

func (suite *ReorderServiceTestSuite) TestSuggestions_ForecastLoadError() {
	suite.mockProductRepo.On("List", mock.Anything, productPageSize, 0).
		Return([]*models.Product{}, nil).Once()
	suite.mockInventoryRepo.On("List", mock.Anything, inventoryPageSize, 0).
		Return([]*models.Inventory{}, nil).Once()
	suite.mockForecastRepo.On("LatestPerProduct", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused")).Once()

	_, err := suite.service.Suggestions(suite.ctx)
	assert.Error(suite.T(), err)
}
