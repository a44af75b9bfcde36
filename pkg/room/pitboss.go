package room

import (
	"github.com/sirupsen/logrus"
)

// PitBoss manages the dealers (i.e., the tables)
type PitBoss struct {
	dealers    map[string]*Dealer
	connect    chan *Client
	disconnect chan *Client
}

// NewPitBoss creates a new PitBoss instance
// The PitBoss is responsible for all the games running
func NewPitBoss() *PitBoss {
	return &PitBoss{
		dealers:    make(map[string]*Dealer),
		connect:    make(chan *Client, 256),
		disconnect: make(chan *Client, 256),
	}
}

// StartShift starts the pit boss run loop
func (p *PitBoss) StartShift() {
	go p.runLoop()
}

func (p *PitBoss) runLoop() {
	logrus.Debug("starting pit boss run loop")
	for {
		select {
		case client := <-p.connect:
			uuid := client.table.UUID

			dealer, ok := p.dealers[uuid]
			if !ok {
				dealer = NewDealer(p, client.table)
				dealer.StartShift()
				p.dealers[uuid] = dealer

				logrus.WithField("uuid", uuid).Debug("created new dealer")
			}

			dealer.AddClient(client)
		case client := <-p.disconnect:
			uuid := client.table.UUID

			dealer, ok := p.dealers[uuid]
			if !ok {
				logrus.WithField("uuid", uuid).Warn("disconnect from unknown table")
				continue
			}

			if lastClient := dealer.RemoveClient(client); lastClient {
				dealer.EndShift()
				delete(p.dealers, uuid)

				logrus.WithField("uuid", uuid).Debug("released dealer")
			}
		}
	}
}

// ClientConnected is called when a client connects to the server
func (p *PitBoss) ClientConnected(client *Client) {
	p.connect <- client
}

// ClientDisconnected is called when a client terminates their connection
func (p *PitBoss) ClientDisconnected(client *Client) {
	p.disconnect <- client
}
