package room

import (
	"twentyeight-server/pkg/playable"
)

const logMessageLimit = 25

// addLogMessages appends messages to the recent log history and broadcasts them
// NOTE: must only be called from the run loop
func (d *Dealer) addLogMessages(messages []*playable.LogMessage) {
	d.logMessages = append(d.logMessages, messages...)
	if over := len(d.logMessages) - logMessageLimit; over > 0 {
		d.logMessages = d.logMessages[over:]
	}

	for _, client := range d.Clients() {
		client.Send(&playable.Response{
			Key:  "logs",
			Data: messages,
		})
	}
}
