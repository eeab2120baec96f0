package main

import (
	"testing"

	"hearts/meta"

	"github.com/stretchr/testify/require"
)

func TestFitAgents(t *testing.T) {
	config := meta.Default()

	trimmed := fitAgents(config, 3)
	require.Len(t, trimmed, 3)
	require.Equal(t, config.Experiment.Agents[:3], trimmed)

	padded := fitAgents(config, 6)
	require.Len(t, padded, 6)
	require.Equal(t, 6, padded[5].ID)
	require.Equal(t, "random", padded[5].Kind)
	require.Len(t, config.Experiment.Agents, 4, "Configuration is left untouched")
}
