package main

import (
	"hearts/experiments/metrics"
	"hearts/meta"
)

// fitAgents trims the configured agents or pads them with random agents so
// there is one per seat.
func fitAgents(config meta.Config, players int) []metrics.AgentConfig {
	agents := config.Experiment.Agents
	if len(agents) >= players {
		return agents[:players]
	}
	agents = append([]metrics.AgentConfig(nil), agents...)
	for id := len(agents) + 1; len(agents) < players; id++ {
		agents = append(agents, metrics.AgentConfig{ID: id, Kind: "random"})
	}
	return agents
}
