package scoring

import (
	"fmt"
	"math"
	"strconv"
)

// Answer is the minimal slice of a stored answer that scoring needs. Value is
// the decoded JSON value (string, float64, bool or []interface{}); Score is
// the contribution precomputed at submission time, if any.
type Answer struct {
	QuestionID uint
	Value      interface{}
	Score      *float64
}

// Question carries the per-question weight used by weighted_average.
type Question struct {
	ID            uint
	ScoringWeight int
}

// ComputeScore converts a set of answers into a single numeric score
// according to the configured method. Pure: no I/O, deterministic for fixed
// inputs.
//
// Per-answer contribution for sum/average/weighted_average: the numeric
// interpretation of the raw value when it has one, else the precomputed
// answer score, else 0. Average and weighted_average round to the nearest
// integer; sum and custom do not.
func ComputeScore(answers []Answer, questions []Question, cfg Config) (float64, error) {
	switch cfg.Method {
	case MethodSum:
		return sumScore(answers), nil
	case MethodAverage:
		return averageScore(answers), nil
	case MethodWeightedAverage:
		return weightedAverageScore(answers, questions), nil
	case MethodCustom:
		return customScore(answers, cfg.Rules), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, cfg.Method)
	}
}

func contribution(a Answer) (float64, bool) {
	if n, ok := NumericValue(a.Value); ok {
		return n, true
	}
	if a.Score != nil {
		return *a.Score, true
	}
	return 0, false
}

func sumScore(answers []Answer) float64 {
	total := 0.0
	for _, a := range answers {
		n, _ := contribution(a)
		total += n
	}
	return total
}

func averageScore(answers []Answer) float64 {
	total, count := 0.0, 0
	for _, a := range answers {
		n, ok := contribution(a)
		if !ok {
			continue
		}
		total += n
		count++
	}
	if count == 0 {
		return 0
	}
	return math.Round(total / float64(count))
}

func weightedAverageScore(answers []Answer, questions []Question) float64 {
	weights := make(map[uint]int, len(questions))
	for _, q := range questions {
		weights[q.ID] = q.ScoringWeight
	}

	totalWeighted, totalWeight := 0.0, 0.0
	for _, a := range answers {
		w, ok := weights[a.QuestionID]
		if !ok {
			continue
		}
		n, _ := contribution(a)
		totalWeighted += n * float64(w)
		totalWeight += float64(w)
	}
	if totalWeight == 0 {
		return 0
	}
	return math.Round(totalWeighted / totalWeight)
}

func customScore(answers []Answer, rules Rules) float64 {
	total := 0.0
	for _, a := range answers {
		rule, ok := rules.QuestionScores[strconv.FormatUint(uint64(a.QuestionID), 10)]
		if !ok {
			continue
		}
		if s, ok := rule.Values[ValueKey(a.Value)]; ok {
			total += s
		} else if rule.Default != nil {
			total += *rule.Default
		}
	}
	return total
}
