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

type AlertRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    AlertRepository
	context context.Context
}

func (suite *AlertRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewAlertRepository(mock)
	suite.context = context.Background()
}

func (suite *AlertRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestAlertRepoTestSuite(t *testing.T) {
	suite.Run(t, new(AlertRepoTestSuite))
}

func (suite *AlertRepoTestSuite) TestCreate_Success() {
	alert := &models.Alert{
		ID:                uuid.New(),
		Type:              models.AlertTypeCriticalStock,
		Severity:          "critical",
		Title:             "Critical Stock Alert: Arabica Beans 1kg",
		Message:           "Critical low stock: 10 units (Safety: 20)",
		ActionRecommended: "Expedite emergency order for 100 units",
		ProductID:         uuid.New(),
		SKU:               "SKU-1001",
		IsResolved:        false,
	}

	suite.mock.ExpectExec(`INSERT INTO alerts`).
		WithArgs(alert.ID, alert.Type, alert.Severity, alert.Title, alert.Message,
			alert.ActionRecommended, alert.ProductID, alert.SKU, alert.IsResolved).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.Create(suite.context, alert)
	assert.NoError(suite.T(), err)
}

func (suite *AlertRepoTestSuite) TestExistsUnresolved_Found() {
	productID := uuid.New()

	rows := pgxmock.NewRows([]string{"exists"}).AddRow(true)
	suite.mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(productID, models.AlertTypeLowStock).
		WillReturnRows(rows)

	exists, err := suite.repo.ExistsUnresolved(suite.context, productID, models.AlertTypeLowStock)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), exists)
}

func (suite *AlertRepoTestSuite) TestExistsUnresolved_NotFound() {
	productID := uuid.New()

	rows := pgxmock.NewRows([]string{"exists"}).AddRow(false)
	suite.mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(productID, models.AlertTypeCriticalStock).
		WillReturnRows(rows)

	exists, err := suite.repo.ExistsUnresolved(suite.context, productID, models.AlertTypeCriticalStock)
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), exists)
}

func (suite *AlertRepoTestSuite) TestListUnresolved_Success() {
	now := time.Now()
	rows := pgxmock.NewRows([]string{"id", "type", "severity", "title", "message", "action_recommended", "product_id", "sku", "is_resolved", "created_at"}).
		AddRow(uuid.New(), models.AlertTypeLowStock, "warning", "Low Stock Alert: Robusta Beans 1kg",
			"Below reorder point: 35 units", "Place regular order for 40 units", uuid.New(), "SKU-1002", false, now)

	suite.mock.ExpectQuery(`WHERE is_resolved = FALSE`).
		WithArgs(50, 0).
		WillReturnRows(rows)

	alerts, err := suite.repo.ListUnresolved(suite.context, 50, 0)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), alerts, 1)
	assert.False(suite.T(), alerts[0].IsResolved)
}

func (suite *AlertRepoTestSuite) TestResolve_Success() {
	id := uuid.New()

	suite.mock.ExpectExec(`UPDATE alerts SET is_resolved = TRUE WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := suite.repo.Resolve(suite.context, id)
	assert.NoError(suite.T(), err)
}
