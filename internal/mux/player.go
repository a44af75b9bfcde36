package mux

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"time"

	gmux "github.com/gorilla/mux"

	"twentyeight-server/internal/jwt"
	"twentyeight-server/internal/util"
	"twentyeight-server/pkg/table"
)

type postPlayerPayload struct {
	DisplayName string `json:"displayName"`
}

type playerWithJWT struct {
	Player *table.Player `json:"player"`
	JWT    string        `json:"jwt"`
}

var validDisplayNameRx = regexp.MustCompile(`^[\p{L}\p{N} ]{0,40}\z`)

func (m *Mux) postPlayer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postPlayerPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if !validDisplayNameRx.MatchString(pp.DisplayName) {
			writeJSONError(w, http.StatusBadRequest, errors.New("display name is not valid"))
			return
		}

		addr := remoteAddr(r)
		at, err := table.LastPlayerCreatedAt(r.Context(), addr)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		if time.Since(at) < m.playerCreateDelay {
			writeJSONError(w, http.StatusTooManyRequests, errors.New("please wait before creating another player"))
			return
		}

		displayName := pp.DisplayName
		if displayName == "" {
			displayName = util.GetRandomName()
		}

		player, err := table.CreatePlayer(r.Context(), displayName, addr)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		signed, err := jwt.Sign(player.ID)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusCreated, playerWithJWT{
			Player: player,
			JWT:    signed,
		})
	}
}

func (m *Mux) getPlayer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player := r.Context().Value(ctxPlayerKey).(*table.Player)
		writeJSON(w, http.StatusOK, player)
	}
}

func (m *Mux) postPlayerID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player := r.Context().Value(ctxPlayerKey).(*table.Player)

		id, err := strconv.ParseInt(gmux.Vars(r)["id"], 10, 64)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		if player.ID != id {
			writeJSONError(w, http.StatusForbidden, nil)
			return
		}

		var pp postPlayerPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if pp.DisplayName == "" || !validDisplayNameRx.MatchString(pp.DisplayName) {
			writeJSONError(w, http.StatusBadRequest, errors.New("display name is not valid"))
			return
		}

		player.DisplayName = pp.DisplayName
		if err := player.Save(r.Context()); err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, player)
	}
}
