package table

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"twentyeight-server/pkg/db"
)

// Game is a record in the `games` table
type Game struct {
	ID        int64
	ParentID  int64
	TableUUID string
	GameType  string
	data      interface{}
	Created   time.Time
	Ended     time.Time
}

const gamesColumns = `id, parent_id, table_uuid, game_type, data, created, ended`

// GameByID returns a game object by its ID
func GameByID(ctx context.Context, id int64) (*Game, error) {
	const query = `
SELECT ` + gamesColumns + `
FROM games
WHERE id = $1`
	row := db.Instance().QueryRowContext(ctx, query, id)
	return gameByRow(row)
}

func gameByRow(row *sql.Row) (*Game, error) {
	var parentID sql.NullInt64
	var g Game
	var data []byte
	var ended sql.NullTime

	if err := row.Scan(&g.ID, &parentID, &g.TableUUID, &g.GameType, &data, &g.Created, &ended); err != nil {
		return nil, err
	}

	g.ParentID = parentID.Int64
	if data != nil {
		if err := json.Unmarshal(data, &g.data); err != nil {
			return nil, err
		}
	}

	g.Ended = ended.Time

	return &g, nil
}

// EndGame will end the game and store the final log
func (g *Game) EndGame(ctx context.Context, data interface{}) error {
	const query = `
UPDATE games
SET data = $1, ended = NOW() AT TIME ZONE 'UTC'
WHERE id = $2
RETURNING ended`

	b, err := json.Marshal(data)
	if err != nil {
		return err
	}

	row := db.Instance().QueryRowContext(ctx, query, b, g.ID)
	var ended time.Time
	if err := row.Scan(&ended); err != nil {
		return err
	}

	g.data = data
	g.Ended = ended
	return nil
}
