package table

import (
	"context"
	"time"

	"github.com/lib/pq"

	"twentyeight-server/pkg/db"
)

// NoSeat is the seat position of a spectator
const NoSeat = -1

// ErrSeatTaken happens when a player tries to take an occupied seat
var ErrSeatTaken = UserError("that seat is already taken")

const playerTableColumns = `
players_tables.id,
players_tables.player_id,
players_tables.table_uuid,
players_tables.is_table_admin,
players_tables.seat_position,
players_tables.active,
players_tables.created,
players_tables.updated`

// PlayerTable represents a row in the players_tables table
type PlayerTable struct {
	Player       *Player   `json:"player"`
	PlayerID     int64     `json:"playerId"`
	TableUUID    string    `json:"tableUuid"`
	ID           int64     `json:"id"`
	IsTableAdmin bool      `json:"isTableAdmin"`
	Seat         int       `json:"seat"`
	Active       bool      `json:"active"`
	Created      time.Time `json:"created"`
	Updated      time.Time `json:"updated"`
}

func getPlayerTableByRow(row db.Scanner) (*PlayerTable, error) {
	var p Player
	var pt PlayerTable

	if err := row.Scan(&p.ID, &p.DisplayName, &p.Created, &p.Updated,
		&pt.ID, &pt.PlayerID, &pt.TableUUID, &pt.IsTableAdmin, &pt.Seat,
		&pt.Active, &pt.Created, &pt.Updated); err != nil {
		return nil, err
	}

	pt.Player = &p

	return &pt, nil
}

// IsSeated returns true if the player holds one of the four seats
func (p *PlayerTable) IsSeated() bool {
	return p.Seat != NoSeat
}

// SetActive sets the active state for the player table in the database
func (p *PlayerTable) SetActive(ctx context.Context, active bool) error {
	const query = `
UPDATE players_tables
SET active = $1, updated = (NOW() AT TIME ZONE 'UTC')
WHERE id = $2`
	execContext, err := db.Instance().ExecContext(ctx, query, active, p.ID)
	if err != nil {
		return err
	}

	if ra, _ := execContext.RowsAffected(); ra > 0 {
		p.Active = active
	}

	return nil
}

// SetSeat takes the given seat, or stands up with NoSeat
// A unique constraint keeps two players out of the same seat.
func (p *PlayerTable) SetSeat(ctx context.Context, seat int) error {
	if seat != NoSeat && (seat < 0 || seat > 3) {
		return UserError("seat must be between 0 and 3")
	}

	const query = `
UPDATE players_tables
SET seat_position = $1, updated = (NOW() AT TIME ZONE 'UTC')
WHERE id = $2`

	if _, err := db.Instance().ExecContext(ctx, query, seat, p.ID); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == pqDuplicateKeyErrorCode {
			return ErrSeatTaken
		}

		return err
	}

	p.Seat = seat
	return nil
}

// Save will save the table admin flag
func (p *PlayerTable) Save(ctx context.Context) error {
	const query = `
UPDATE players_tables
SET is_table_admin = $1, updated = (NOW() AT TIME ZONE 'utc')
WHERE id = $2`

	_, err := db.Instance().ExecContext(ctx, query, p.IsTableAdmin, p.ID)
	return err
}

// SetIsTableAdmin sets whether the player can administer the table
func (p *PlayerTable) SetIsTableAdmin(ctx context.Context, isTableAdmin bool) error {
	if p.IsTableAdmin == isTableAdmin {
		return nil
	}

	p.IsTableAdmin = isTableAdmin
	return p.Save(ctx)
}
