package room

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"twentyeight-server/pkg/playable"
	"twentyeight-server/pkg/table"
)

type state int

const (
	stateClientEvent state = iota
	stateGameEvent
	stateGameEnded
)

// Dealer is responsible for running the games at a table
type Dealer struct {
	pitBoss *PitBoss
	table   *table.Table
	clients map[*Client]bool
	lock    sync.RWMutex

	game        playable.Playable
	pendingGame *pendingGame
	logMessages []*playable.LogMessage

	// gameTick drives Tickable games; nil while no game is running
	gameTick *time.Ticker

	execInRunLoop chan func()
	stateChanged  chan state
	close         chan bool
}

// NewDealer creates a new dealer object
// This is called from a blocking state, so it needs to return quickly
func NewDealer(pitBoss *PitBoss, table *table.Table) *Dealer {
	return &Dealer{
		pitBoss:       pitBoss,
		table:         table,
		clients:       make(map[*Client]bool),
		execInRunLoop: make(chan func(), 256),
		stateChanged:  make(chan state, 256),
		close:         make(chan bool),
	}
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

func (d *Dealer) runLoop() {
	log := logrus.WithFields(logrus.Fields{
		"uuid": d.table.UUID,
		"name": d.table.Name,
	})

	log.Debug("creating dealer run loop")
	for {
		var tick <-chan time.Time
		if d.gameTick != nil {
			tick = d.gameTick.C
		}

		var pendingStart <-chan time.Time
		if d.pendingGame != nil {
			pendingStart = d.pendingGame.timer.C
		}

		select {
		case s := <-d.stateChanged:
			switch s {
			case stateClientEvent:
				d.sendPlayerData()
			case stateGameEvent:
				d.sendGameData()
			case stateGameEnded:
				d.sendGameEnded()
				d.sendPlayerData()
			}
		case fn := <-d.execInRunLoop:
			fn()
		case <-tick:
			d.tickGame()
		case <-pendingStart:
			d.startPendingGame()
		case <-d.close:
			d.stopGameTick()
			if d.pendingGame != nil {
				d.pendingGame.cancel()
			}

			log.Debug("terminating dealer run loop")
			return
		}
	}
}

// AddClient adds a client
// This method must return quickly
func (d *Dealer) AddClient(client *Client) {
	d.lock.Lock()
	client.dealer = d
	d.clients[client] = true
	d.lock.Unlock()

	d.stateChanged <- stateClientEvent
	d.execInRunLoop <- func() {
		if len(d.logMessages) > 0 {
			client.Send(&playable.Response{Key: "logs", Data: d.logMessages})
		}

		if d.pendingGame != nil {
			client.Send(&playable.Response{Key: "pendingGame", Data: d.pendingGame})
		}

		if d.game == nil {
			return
		}

		gs, err := d.game.GetPlayerState(client.player.ID)
		if err != nil {
			logrus.WithError(err).Error("could not get player state")
			return
		}

		client.Send(gs)
	}
}

// RemoveClient removes a client
// This method must return quickly
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	delete(d.clients, client)
	nClients := len(d.clients)
	d.lock.Unlock()

	if nClients > 0 {
		d.stateChanged <- stateClientEvent
		return false
	}

	return true
}

// EndShift is called when the dealer is no longer needed
func (d *Dealer) EndShift() {
	close(d.close)
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendGameEnded() {
	for _, client := range d.Clients() {
		client.Send(&playable.Response{
			Key: "gameEnded",
		})
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendGameData() {
	if d.game == nil {
		return
	}

	for _, client := range d.Clients() {
		data, err := d.game.GetPlayerState(client.player.ID)
		if err != nil {
			logrus.WithError(err).Error("could not get player state")
			continue
		}

		client.Send(data)
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendPlayerData() {
	players, err := d.table.GetPlayers(context.Background())
	if err != nil {
		logrus.WithField("uuid", d.table.UUID).WithError(err).Error("could not get players")
		return
	}

	connected := make(map[int64]bool)
	for _, client := range d.Clients() {
		connected[client.player.ID] = true
	}

	csPlayers := make(map[int64]*clientStatePlayer)
	for _, player := range players {
		csPlayers[player.PlayerID] = &clientStatePlayer{
			PlayerTable: player,
			IsConnected: connected[player.PlayerID],
		}
	}

	for _, client := range d.Clients() {
		client.Send(&playable.Response{
			Key:  "clientState",
			Data: csPlayers,
		})
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) tickGame() {
	tickable, ok := d.game.(playable.Tickable)
	if !ok {
		return
	}

	update, err := tickable.Tick()
	if err != nil {
		logrus.WithError(err).Error("game tick failed")
		return
	}

	if update {
		d.sendGameData()
	}

	d.checkGameEnded()
}

// NOTE: must only be called from the run loop
func (d *Dealer) checkGameEnded() {
	if d.game == nil {
		return
	}

	details, isOver := d.game.GetEndOfGameDetails()
	if !isOver {
		return
	}

	record, err := d.table.CreateGame(context.Background(), d.game.Name())
	if err != nil {
		logrus.WithError(err).Error("could not create game record")
	} else if err := record.EndGame(context.Background(), details.Log); err != nil {
		logrus.WithError(err).Error("could not save game record")
	}

	d.stopGameTick()
	d.game = nil
	d.sendGameEnded()
	d.sendPlayerData()
}

// NOTE: must only be called from the run loop
func (d *Dealer) startPendingGame() {
	pg := d.pendingGame
	d.pendingGame = nil

	players, err := d.table.GetSeatedPlayers(context.Background())
	if err != nil {
		pg.client.Send(newErrorResponse(pg.message.Context, err))
		return
	}

	logger := logrus.WithField("uuid", d.table.UUID)
	game, err := pg.factory.CreateGame(logger, players, pg.message.AdditionalData)
	if err != nil {
		logger.WithError(err).Warn("could not start game")
		pg.client.Send(newErrorResponse(pg.message.Context, err))
		d.sendPlayerData()
		return
	}

	d.game = game
	if tickable, ok := game.(playable.Tickable); ok {
		d.gameTick = time.NewTicker(tickable.Delay())
	}

	go d.consumeLogChan(game.LogChan())

	d.sendGameData()
}

func (d *Dealer) consumeLogChan(logChan <-chan []*playable.LogMessage) {
	for messages := range logChan {
		messages := messages
		d.execInRunLoop <- func() {
			d.addLogMessages(messages)
		}
	}
}

func (d *Dealer) stopGameTick() {
	if d.gameTick != nil {
		d.gameTick.Stop()
		d.gameTick = nil
	}
}

// canAdminTable will send an error message to the client if they are not a table admin
// If they are an admin, true is returned
func canAdminTable(ctx string, c *Client) bool {
	playerTable, err := c.player.GetPlayerTable(context.Background(), c.table)
	if err != nil {
		c.Send(newErrorResponse(ctx, err))
		return false
	}

	if !playerTable.IsTableAdmin {
		c.Send(newErrorResponse(ctx, errors.New("you do not have the appropriate permission")))
		return false
	}

	return true
}

// ReceivedMessage is called when a client sends a message to the server
func (d *Dealer) ReceivedMessage(c *Client, msg *playable.PayloadIn) {
	switch msg.Action {
	case "createGame":
		if !canAdminTable(msg.Context, c) {
			return
		}

		d.execInRunLoop <- func() {
			if d.game != nil || d.pendingGame != nil {
				c.Send(newErrorResponse(msg.Context, errors.New("a game is already in progress")))
				return
			}

			pg, err := newPendingGame(c, msg)
			if err != nil {
				c.Send(newErrorResponse(msg.Context, err))
				return
			}

			d.pendingGame = pg
			for _, client := range d.Clients() {
				client.Send(&playable.Response{Key: "pendingGame", Data: pg})
			}

			c.Send(playable.OK(msg.Context))
		}
	case "cancelGame":
		if !canAdminTable(msg.Context, c) {
			return
		}

		d.execInRunLoop <- func() {
			if d.pendingGame == nil {
				c.Send(newErrorResponse(msg.Context, errors.New("no game is waiting to start")))
				return
			}

			d.pendingGame.cancel()
			d.pendingGame = nil
			for _, client := range d.Clients() {
				client.Send(&playable.Response{Key: "pendingGame", Data: nil})
			}

			c.Send(playable.OK(msg.Context))
		}
	case "terminateGame":
		if !canAdminTable(msg.Context, c) {
			return
		}

		d.execInRunLoop <- func() {
			d.stopGameTick()
			d.game = nil
			d.stateChanged <- stateGameEnded
		}

		c.Send(playable.OK(msg.Context))
	case "takeSeat":
		d.execInRunLoop <- func() {
			if d.game != nil {
				c.Send(newErrorResponse(msg.Context, errors.New("cannot change seats during a game")))
				return
			}

			seat, ok := msg.AdditionalData.GetInt("seat")
			if !ok {
				c.Send(newErrorResponse(msg.Context, errors.New("could not obtain seat")))
				return
			}

			pt, err := c.player.GetPlayerTable(context.Background(), c.table)
			if err != nil {
				c.Send(newErrorResponse(msg.Context, err))
				return
			}

			if err := pt.SetSeat(context.Background(), seat); err != nil {
				c.Send(newErrorResponse(msg.Context, err))
				return
			}

			c.Send(playable.OK(msg.Context))
			d.stateChanged <- stateClientEvent
		}
	case "tableAdmin":
		d.execInRunLoop <- func() {
			if !canAdminTable(msg.Context, c) {
				return
			}

			isTableAdmin, ok := msg.AdditionalData.GetBool("isTableAdmin")
			if !ok {
				c.Send(newErrorResponse(msg.Context, errors.New("isTableAdmin is not boolean")))
				return
			}

			playerID, ok := msg.AdditionalData.GetInt("playerId")
			if !ok {
				c.Send(newErrorResponse(msg.Context, errors.New("could not obtain playerId")))
				return
			}

			player, err := table.GetPlayerByID(context.Background(), int64(playerID))
			if err != nil {
				c.Send(newErrorResponse(msg.Context, err))
				return
			}

			playerTable, err := player.GetPlayerTable(context.Background(), c.table)
			if err != nil {
				c.Send(newErrorResponse(msg.Context, err))
				return
			}

			if err := playerTable.SetIsTableAdmin(context.Background(), isTableAdmin); err != nil {
				c.Send(newErrorResponse(msg.Context, err))
				return
			}

			c.Send(playable.OK(msg.Context))
			d.stateChanged <- stateClientEvent
		}
	case "playerStatus":
		d.execInRunLoop <- func() {
			var pt *table.PlayerTable
			var err error

			// set status for another player, requires table admin
			if playerID, ok := msg.AdditionalData.GetInt("playerId"); ok {
				if !canAdminTable(msg.Context, c) {
					return
				}

				var player *table.Player
				player, err = table.GetPlayerByID(context.Background(), int64(playerID))
				if err != nil {
					c.Send(newErrorResponse(msg.Context, err))
					return
				}

				pt, err = player.GetPlayerTable(context.Background(), c.table)
			} else {
				// set status for self
				pt, err = c.player.GetPlayerTable(context.Background(), c.table)
			}

			if err != nil {
				c.Send(newErrorResponse(msg.Context, err))
				return
			}

			isActive, ok := msg.AdditionalData.GetBool("active")
			if !ok {
				c.Send(newErrorResponse(msg.Context, errors.New("active is not boolean")))
				return
			}

			if err := pt.SetActive(context.Background(), isActive); err != nil {
				c.Send(newErrorResponse(msg.Context, err))
				return
			}

			c.Send(playable.OK(msg.Context))
			d.stateChanged <- stateClientEvent
		}
	default:
		d.execInRunLoop <- func() {
			game := d.game
			if game == nil {
				logrus.WithField("msg", msg).Warn("unknown message")
				return
			}

			action, updateState, err := game.Action(c.player.ID, msg)
			if err != nil {
				logrus.WithError(err).WithField("client", c.String()).Debug("could not perform action")
				c.Send(newErrorResponse(msg.Context, err))
				return
			}

			if action != nil {
				action.Context = msg.Context
				c.Send(action)
			}

			if updateState {
				d.sendGameData()
			}

			d.checkGameEnded()
		}
	}
}
