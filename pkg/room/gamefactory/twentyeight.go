package gamefactory

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"twentyeight-server/internal/config"
	"twentyeight-server/pkg/game/twentyeight"
	"twentyeight-server/pkg/playable"
	"twentyeight-server/pkg/table"
)

type twentyEightFactory struct{}

func (t twentyEightFactory) Name(additionalData playable.AdditionalData) (string, error) {
	return "Twenty-Eight", nil
}

func (t twentyEightFactory) CreateGame(logger logrus.FieldLogger, players []*table.PlayerTable, additionalData playable.AdditionalData) (playable.Playable, error) {
	seats := make([]twentyeight.Seat, 0, len(players))
	for _, player := range players {
		if !player.Active {
			return nil, errors.New("all seated players must be active")
		}

		seats = append(seats, twentyeight.Seat{
			PlayerID: player.PlayerID,
			Name:     player.Player.DisplayName,
			Position: player.Seat,
		})
	}

	opts := twentyeight.DefaultOptions()
	if delay := config.Instance().TrickClearDelay; delay > 0 {
		opts.TrickClearDelay = time.Second * time.Duration(delay)
	}

	game, err := twentyeight.NewGame(logger, seats, opts)
	if err != nil {
		return nil, err
	}

	if err := game.Start(); err != nil {
		return nil, err
	}

	return game, nil
}
