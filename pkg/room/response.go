package room

import (
	"twentyeight-server/pkg/playable"
	"twentyeight-server/pkg/table"
)

type clientStatePlayer struct {
	*table.PlayerTable
	IsConnected bool `json:"isConnected"`
}

func newErrorResponse(ctx string, err error) *playable.Response {
	return &playable.Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}
