package services

import (
	"context"
	"log"

	"supplysight/internal/engine"
)

type ScenarioService interface {
	Simulate(ctx context.Context, scenarioType string, params map[string]any) (*engine.ScenarioResult, error)
}

type scenarioService struct{}

func NewScenarioService() ScenarioService {
	return &scenarioService{}
}

func (s *scenarioService) Simulate(_ context.Context, scenarioType string, params map[string]any) (*engine.ScenarioResult, error) {
	result, err := engine.SimulateScenario(engine.ScenarioType(scenarioType), engine.ScenarioParameters(params))
	if err != nil {
		return nil, err
	}
	log.Printf("Scenario simulated: type=%s cost_impact=%.2f timeline_adjustment=%d",
		scenarioType, result.EstimatedCostImpact, result.TimelineAdjustment)
	return result, nil
}
