package room

import (
	"time"

	"twentyeight-server/internal/config"
	"twentyeight-server/pkg/playable"
	"twentyeight-server/pkg/room/gamefactory"
)

const defaultStartGameDelay = time.Second * 10

// pendingGame is a game that has been requested but not yet dealt.
// The countdown gives everyone at the table a chance to take a seat.
type pendingGame struct {
	Name     string    `json:"name"`
	Start    time.Time `json:"start"`
	PlayerID int64     `json:"playerId"`
	client   *Client
	message  *playable.PayloadIn
	factory  gamefactory.GameFactory
	timer    *time.Timer
}

func newPendingGame(c *Client, msg *playable.PayloadIn) (*pendingGame, error) {
	factory, err := gamefactory.Get(msg.Subject)
	if err != nil {
		return nil, err
	}

	name, err := factory.Name(msg.AdditionalData)
	if err != nil {
		return nil, err
	}

	start := time.Now().Add(startGameDelay())
	timer := time.NewTimer(time.Until(start))

	return &pendingGame{
		client:   c,
		message:  msg,
		factory:  factory,
		Name:     name,
		Start:    start,
		PlayerID: c.player.ID,
		timer:    timer,
	}, nil
}

func (p *pendingGame) cancel() {
	p.timer.Stop()
}

func startGameDelay() time.Duration {
	if delay := config.Instance().StartGameDelay; delay > 0 {
		return time.Second * time.Duration(delay)
	}

	return defaultStartGameDelay
}
