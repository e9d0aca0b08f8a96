package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateScenario_DemandSpike(t *testing.T) {
	result, err := SimulateScenario(ScenarioDemandSpike, ScenarioParameters{
		"spikePercentage":    50.0,
		"affectedCategories": []string{"beverages", "snacks"},
	})
	require.NoError(t, err)

	assert.Equal(t, "50% demand increase across 2 categories", result.Impact)
	assert.Equal(t, []string{"beverages", "snacks"}, result.AffectedProducts)
	assert.Equal(t, 25000.0, result.EstimatedCostImpact)
	assert.Equal(t, 5, result.TimelineAdjustment)
	require.Len(t, result.RecommendedActions, 4)
	assert.Equal(t, "Increase safety stock by 25%", result.RecommendedActions[0])
	assert.Equal(t, "Expedite orders from backup suppliers", result.RecommendedActions[1])
}

func TestSimulateScenario_DemandSpikeDefaults(t *testing.T) {
	result, err := SimulateScenario(ScenarioDemandSpike, ScenarioParameters{})
	require.NoError(t, err)

	assert.Equal(t, "50% demand increase across all categories", result.Impact)
	assert.Empty(t, result.AffectedProducts)
	assert.Equal(t, 25000.0, result.EstimatedCostImpact)
	assert.Equal(t, 5, result.TimelineAdjustment)
}

func TestSimulateScenario_SupplyDelay(t *testing.T) {
	result, err := SimulateScenario(ScenarioSupplyDelay, ScenarioParameters{
		"delayDays":         7.0,
		"affectedSuppliers": []string{},
	})
	require.NoError(t, err)

	assert.Equal(t, "7 day delay from 0 suppliers", result.Impact)
	assert.Equal(t, 14000.0, result.EstimatedCostImpact)
	assert.Equal(t, 7, result.TimelineAdjustment)
	assert.Equal(t, scenarioActions[ScenarioSupplyDelay], result.RecommendedActions)
}

func TestSimulateScenario_RouteDisruption(t *testing.T) {
	result, err := SimulateScenario(ScenarioRouteDisruption, ScenarioParameters{
		"affectedRoutes": []string{"north", "coastal"},
		"duration":       4.0,
	})
	require.NoError(t, err)

	assert.Equal(t, "Logistics disruption on 2 routes for 4 days", result.Impact)
	assert.Equal(t, 4000.0, result.EstimatedCostImpact)
	assert.Equal(t, 6, result.TimelineAdjustment)
}

func TestSimulateScenario_Deterministic(t *testing.T) {
	params := ScenarioParameters{"delayDays": 7.0, "affectedSuppliers": []string{}}

	first, err := SimulateScenario(ScenarioSupplyDelay, params)
	require.NoError(t, err)
	second, err := SimulateScenario(ScenarioSupplyDelay, params)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSimulateScenario_UnknownType(t *testing.T) {
	_, err := SimulateScenario("earthquake", ScenarioParameters{})
	assert.ErrorIs(t, err, ErrUnknownScenario)
}

func TestSimulateScenario_JSONDecodedParameters(t *testing.T) {
	// JSON decoding hands the simulator float64 numbers and []any lists.
	result, err := SimulateScenario(ScenarioDemandSpike, ScenarioParameters{
		"spikePercentage":    float64(30),
		"affectedCategories": []any{"dairy", 42, "produce"},
	})
	require.NoError(t, err)

	assert.Equal(t, "30% demand increase across 2 categories", result.Impact)
	assert.Equal(t, []string{"dairy", "produce"}, result.AffectedProducts)
	assert.Equal(t, 21000.0, result.EstimatedCostImpact)
	assert.Equal(t, 3, result.TimelineAdjustment)
}
