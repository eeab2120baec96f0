package game

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// CopyFor returns a copy of the state as seen by observer. With
// FullInformation the copy is exact. Otherwise every other player's hand is
// pooled with the draw pile, shuffled and dealt back out at the original
// sizes, so the copy keeps everything the observer knows and randomizes the
// rest. Public state is copied as is.
func (gs GameState) CopyFor(observer int) (*GameState, error) {
	if observer == FullInformation {
		return gs.Copy(), nil
	}
	if observer < 0 || observer >= gs.NumPlayers() {
		return nil, fmt.Errorf("%w: observer %d out of range [-1, %d)", ErrConfig, observer, gs.NumPlayers())
	}

	c := gs.Copy()
	sizes := make([]int, c.NumPlayers())
	for i := range c.Hands {
		if i == observer {
			continue
		}
		sizes[i] = len(c.Hands[i])
		c.DrawPile = append(c.DrawPile, c.Hands[i]...)
		c.Hands[i] = nil
	}

	c.rng.Shuffle(len(c.DrawPile), func(i, j int) {
		c.DrawPile[i], c.DrawPile[j] = c.DrawPile[j], c.DrawPile[i]
	})

	for i := range c.Hands {
		if i == observer {
			continue
		}
		c.Hands[i] = slices.Clone(c.DrawPile[:sizes[i]])
		c.DrawPile = c.DrawPile[sizes[i]:]
	}
	c.DrawPile = slices.Clone(c.DrawPile)
	return c, nil
}
