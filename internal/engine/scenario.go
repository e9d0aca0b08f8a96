package engine

import (
	"fmt"
	"math"
	"strconv"
)

// ScenarioType identifies one of the three supported what-if scenarios.
type ScenarioType string

const (
	ScenarioDemandSpike     ScenarioType = "demand_spike"
	ScenarioSupplyDelay     ScenarioType = "supply_delay"
	ScenarioRouteDisruption ScenarioType = "route_disruption"
)

// ScenarioParameters is a loose bag of named parameters; each scenario type
// reads its own keys and substitutes defaults for missing ones.
type ScenarioParameters map[string]any

// ScenarioResult is the closed-form impact estimate for one scenario run.
type ScenarioResult struct {
	Impact              string   `json:"impact"`
	AffectedProducts    []string `json:"affected_products"`
	RecommendedActions  []string `json:"recommended_actions"`
	EstimatedCostImpact float64  `json:"estimated_cost_impact"`
	TimelineAdjustment  int      `json:"timeline_adjustment"`
}

// Canned action lists per scenario type, in recommendation order. The demand
// spike list is prepended with a parameter-driven safety stock action at
// simulation time.
var scenarioActions = map[ScenarioType][]string{
	ScenarioDemandSpike: {
		"Expedite orders from backup suppliers",
		"Consider alternative fulfillment centers",
		"Communicate delivery expectations to customers",
	},
	ScenarioSupplyDelay: {
		"Activate backup suppliers immediately",
		"Redistribute stock from other warehouses",
		"Adjust production schedule",
		"Prioritize high-margin products",
	},
	ScenarioRouteDisruption: {
		"Switch to alternative carriers",
		"Use expedited shipping options",
		"Consolidate shipments where possible",
		"Update customer delivery estimates",
	},
}

// SimulateScenario applies the deterministic cost model for the given scenario
// type. There is no randomness here: "simulate" means a closed-form estimate,
// and identical inputs always yield identical results.
func SimulateScenario(scenarioType ScenarioType, params ScenarioParameters) (*ScenarioResult, error) {
	switch scenarioType {
	case ScenarioDemandSpike:
		return simulateDemandSpike(params), nil
	case ScenarioSupplyDelay:
		return simulateSupplyDelay(params), nil
	case ScenarioRouteDisruption:
		return simulateRouteDisruption(params), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScenario, scenarioType)
	}
}

func simulateDemandSpike(params ScenarioParameters) *ScenarioResult {
	spike := params.float("spikePercentage", 50)
	categories := params.strings("affectedCategories")

	categoryCount := "all"
	if len(categories) > 0 {
		categoryCount = strconv.Itoa(len(categories))
	}

	actions := make([]string, 0, len(scenarioActions[ScenarioDemandSpike])+1)
	actions = append(actions, fmt.Sprintf("Increase safety stock by %d%%", int(math.Round(spike/2))))
	actions = append(actions, scenarioActions[ScenarioDemandSpike]...)

	return &ScenarioResult{
		Impact:              fmt.Sprintf("%s%% demand increase across %s categories", formatNumber(spike), categoryCount),
		AffectedProducts:    categories,
		RecommendedActions:  actions,
		EstimatedCostImpact: 15000 + spike*200,
		TimelineAdjustment:  int(math.Ceil(spike / 10)),
	}
}

func simulateSupplyDelay(params ScenarioParameters) *ScenarioResult {
	delayDays := params.float("delayDays", 7)
	suppliers := params.strings("affectedSuppliers")

	return &ScenarioResult{
		Impact:              fmt.Sprintf("%s day delay from %d suppliers", formatNumber(delayDays), len(suppliers)),
		AffectedProducts:    suppliers,
		RecommendedActions:  scenarioActions[ScenarioSupplyDelay],
		EstimatedCostImpact: delayDays * 2000,
		TimelineAdjustment:  int(delayDays),
	}
}

func simulateRouteDisruption(params ScenarioParameters) *ScenarioResult {
	routes := params.strings("affectedRoutes")
	duration := params.float("duration", 3)

	return &ScenarioResult{
		Impact:              fmt.Sprintf("Logistics disruption on %d routes for %s days", len(routes), formatNumber(duration)),
		AffectedProducts:    routes,
		RecommendedActions:  scenarioActions[ScenarioRouteDisruption],
		EstimatedCostImpact: float64(len(routes)) * duration * 500,
		TimelineAdjustment:  int(duration) + 2,
	}
}

// float reads a numeric parameter, accepting the types JSON decoding and
// direct construction produce.
func (p ScenarioParameters) float(key string, def float64) float64 {
	v, ok := p[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return def
	}
}

// strings reads a string-list parameter, accepting both []string and the
// []any a JSON decoder produces. Missing or malformed values yield an empty
// list rather than an error.
func (p ScenarioParameters) strings(key string) []string {
	v, ok := p[key]
	if !ok {
		return []string{}
	}
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}

// formatNumber renders a parameter value without a trailing ".0" for whole
// numbers, matching how the narratives read.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
