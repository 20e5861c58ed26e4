package scoring

import (
	"encoding/json"
	"errors"
	"fmt"
)

type Method string

const (
	MethodSum             Method = "sum"
	MethodAverage         Method = "average"
	MethodWeightedAverage Method = "weighted_average"
	MethodCustom          Method = "custom"
)

var (
	// ErrUnknownMethod marks a configuration referencing a scoring method this
	// engine does not implement. A server-side configuration fault, not bad
	// user input.
	ErrUnknownMethod = errors.New("unknown scoring method")

	// ErrInvalidRules marks a rule document that does not satisfy the schema
	// its scoring method requires.
	ErrInvalidRules = errors.New("invalid scoring rules")
)

// QuestionRule is the per-question entry of a custom rule table: exact value
// matches first, then the default, else the answer contributes nothing.
type QuestionRule struct {
	Values  map[string]float64 `json:"values"`
	Default *float64           `json:"default,omitempty"`
}

// RiskLevels holds the ascending score thresholds for the medium and high
// tiers. A missing threshold leaves that tier unreachable.
type RiskLevels struct {
	Medium *float64 `json:"medium,omitempty"`
	High   *float64 `json:"high,omitempty"`
}

// Rules is the typed form of a ScoringConfig's rule document. QuestionScores
// is keyed by decimal question id and is only meaningful for the custom
// method; RiskLevels applies to every method.
type Rules struct {
	QuestionScores map[string]QuestionRule `json:"question_scores,omitempty"`
	RiskLevels     *RiskLevels             `json:"risk_levels,omitempty"`
}

// Config pairs a scoring method with its parsed rules.
type Config struct {
	Method Method
	Rules  Rules
}

// ParseRules validates a raw rule document against its scoring method so a
// corrupt configuration fails at load time instead of deep inside scoring.
func ParseRules(method Method, raw []byte) (Rules, error) {
	switch method {
	case MethodSum, MethodAverage, MethodWeightedAverage, MethodCustom:
	default:
		return Rules{}, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}

	var rules Rules
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &rules); err != nil {
			return Rules{}, fmt.Errorf("%w: %v", ErrInvalidRules, err)
		}
	}

	if method == MethodCustom && rules.QuestionScores == nil {
		return Rules{}, fmt.Errorf("%w: custom method requires question_scores", ErrInvalidRules)
	}

	// A crossed threshold pair (high < medium) is accepted: the classifier
	// checks high first, so the result stays deterministic.
	return rules, nil
}
