package repositories

import (
	"context"
	"testing"
	"time"

	"supplysight/internal/models"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ForecastRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    ForecastRepository
	context context.Context
}

func (suite *ForecastRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewForecastRepository(mock)
	suite.context = context.Background()
}

func (suite *ForecastRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestForecastRepoTestSuite(t *testing.T) {
	suite.Run(t, new(ForecastRepoTestSuite))
}

func (suite *ForecastRepoTestSuite) TestUpsert_Success() {
	forecast := &models.DemandForecast{
		ID:                  uuid.New(),
		ProductID:           uuid.New(),
		ForecastDate:        time.Now().AddDate(0, 0, 30),
		PredictedDemand:     100,
		ConfidenceScore:     85,
		RecommendedOrderQty: 120,
		SeasonalityFactor:   1.0,
		Reasoning:           "Stable demand pattern, high prediction confidence",
	}

	suite.mock.ExpectExec(`INSERT INTO demand_forecasts`).
		WithArgs(forecast.ID, forecast.ProductID, forecast.ForecastDate,
			forecast.PredictedDemand, forecast.ConfidenceScore, forecast.RecommendedOrderQty,
			forecast.SeasonalityFactor, forecast.Reasoning).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.Upsert(suite.context, forecast)
	assert.NoError(suite.T(), err)
}

func (suite *ForecastRepoTestSuite) TestListUpcoming_Success() {
	from := time.Now()
	rows := pgxmock.NewRows([]string{"id", "product_id", "forecast_date", "predicted_demand", "confidence_score", "recommended_order_qty", "seasonality_factor", "reasoning", "created_at"}).
		AddRow(uuid.New(), uuid.New(), from.AddDate(0, 0, 1), 100, 85, 120, 1.0, "Stable demand pattern", from).
		AddRow(uuid.New(), uuid.New(), from.AddDate(0, 0, 2), 90, 80, 110, 1.2, "Stable demand pattern, seasonal peak period", from)

	suite.mock.ExpectQuery(`SELECT id, product_id, forecast_date`).
		WithArgs(from, 50, 0).
		WillReturnRows(rows)

	forecasts, err := suite.repo.ListUpcoming(suite.context, from, 50, 0)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), forecasts, 2)
	assert.Equal(suite.T(), 100, forecasts[0].PredictedDemand)
}

func (suite *ForecastRepoTestSuite) TestLatestPerProduct_Success() {
	from := time.Now()
	productID := uuid.New()
	rows := pgxmock.NewRows([]string{"id", "product_id", "forecast_date", "predicted_demand", "confidence_score", "recommended_order_qty", "seasonality_factor", "reasoning", "created_at"}).
		AddRow(uuid.New(), productID, from.AddDate(0, 0, 1), 100, 85, 120, 1.0, "Stable demand pattern", from)

	suite.mock.ExpectQuery(`SELECT DISTINCT ON \(product_id\)`).
		WithArgs(from).
		WillReturnRows(rows)

	forecasts, err := suite.repo.LatestPerProduct(suite.context, from)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), forecasts, 1)
	assert.Equal(suite.T(), productID, forecasts[0].ProductID)
}

func (suite *ForecastRepoTestSuite) TestDeleteByProduct_Success() {
	productID := uuid.New()

	suite.mock.ExpectExec(`DELETE FROM demand_forecasts WHERE product_id = \$1`).
		WithArgs(productID).
		WillReturnResult(pgxmock.NewResult("DELETE", 30))

	err := suite.repo.DeleteByProduct(suite.context, productID)
	assert.NoError(suite.T(), err)
}
