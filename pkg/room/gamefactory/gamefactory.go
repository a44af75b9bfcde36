package gamefactory

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"twentyeight-server/pkg/playable"
	"twentyeight-server/pkg/table"
)

// GameFactory builds a game from the seated players
type GameFactory interface {
	// Name returns the display name for the requested game
	Name(additionalData playable.AdditionalData) (string, error)

	// CreateGame creates the game
	// players are the seated players ordered by seat position.
	CreateGame(logger logrus.FieldLogger, players []*table.PlayerTable, additionalData playable.AdditionalData) (playable.Playable, error)
}

var factories = map[string]GameFactory{
	"twenty-eight": twentyEightFactory{},
}

// Get returns the factory for the named game
func Get(name string) (GameFactory, error) {
	factory, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown game: %s", name)
	}

	return factory, nil
}
