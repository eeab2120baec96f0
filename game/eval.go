package game

import (
	"fmt"

	"hearts/utils"
)

// HeuristicConfig holds the normalizing constants of the heuristics.
type HeuristicConfig struct {
	MaxScore           float64 `yaml:"max_score"`            // Penalty points available in a round
	MaxTricks          float64 `yaml:"max_tricks"`           // Tricks in a round
	MaxHighValueCards  float64 `yaml:"max_high_value_cards"` // Cap on the high card count
	HighValueThreshold Rank    `yaml:"high_value_threshold"` // Cards ranked above this count as high
	HighCardBonus      float64 `yaml:"high_card_bonus"`
}

func DefaultHeuristicConfig() HeuristicConfig {
	return HeuristicConfig{
		MaxScore:           26,
		MaxTricks:          13,
		MaxHighValueCards:  14,
		HighValueThreshold: Jack,
		HighCardBonus:      1.6,
	}
}

// ScoreFactor is 1 with no points taken and falls as penalties accumulate.
func (hc HeuristicConfig) ScoreFactor(gs *GameState, player int) float64 {
	return (hc.MaxScore - float64(gs.Points[player])) / hc.MaxScore
}

// TricksFactor is 1 with no tricks taken this round.
func (hc HeuristicConfig) TricksFactor(gs *GameState, player int) float64 {
	return (hc.MaxTricks - float64(gs.TricksTaken[player])) / hc.MaxTricks
}

// HighCardFactor rewards holding few high cards, which are likely to win tricks.
func (hc HeuristicConfig) HighCardFactor(gs *GameState, player int) float64 {
	high := float64(utils.CountFunc(gs.Hands[player], func(c Card) bool {
		return c.Rank > hc.HighValueThreshold
	}))
	if high >= hc.MaxHighValueCards {
		return 0
	}
	return (hc.MaxHighValueCards - high) / hc.MaxHighValueCards * hc.HighCardBonus
}

// EvaluateNothing scores every state the same.
func EvaluateNothing(*GameState, int) float64 {
	return 0
}

func (hc HeuristicConfig) EvaluateScore() Evaluate {
	return func(gs *GameState, player int) float64 {
		return hc.ScoreFactor(gs, player)
	}
}

func (hc HeuristicConfig) EvaluateHighValueCards() Evaluate {
	return func(gs *GameState, player int) float64 {
		return hc.ScoreFactor(gs, player) + hc.HighCardFactor(gs, player)
	}
}

func (hc HeuristicConfig) EvaluateScoreAndTricks() Evaluate {
	return func(gs *GameState, player int) float64 {
		return hc.ScoreFactor(gs, player) + hc.TricksFactor(gs, player)
	}
}

func (hc HeuristicConfig) EvaluateTricksAndHighCards() Evaluate {
	return func(gs *GameState, player int) float64 {
		return hc.TricksFactor(gs, player) + hc.HighCardFactor(gs, player)
	}
}

// HeuristicByName resolves a configured heuristic name.
func HeuristicByName(name string, hc HeuristicConfig) (Evaluate, error) {
	switch name {
	case "none":
		return EvaluateNothing, nil
	case "score", "":
		return hc.EvaluateScore(), nil
	case "high-cards":
		return hc.EvaluateHighValueCards(), nil
	case "score-tricks":
		return hc.EvaluateScoreAndTricks(), nil
	case "tricks-high-cards":
		return hc.EvaluateTricksAndHighCards(), nil
	default:
		return nil, fmt.Errorf("%w: unknown heuristic %q", ErrConfig, name)
	}
}
