package mux

import (
	"context"
	"net/http"
	"strings"

	"cardsagainstagility-server/internal/config"
	"cardsagainstagility-server/internal/jwt"
	"cardsagainstagility-server/pkg/game"
	"cardsagainstagility-server/pkg/room"
	"cardsagainstagility-server/pkg/store"

	gmux "github.com/gorilla/mux"
)

type ctxKey int

const ctxParticipantKey ctxKey = iota

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	store   *store.Store
	pitBoss *room.PitBoss

	// store for testing purposes
	authRouter *gmux.Router
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	cfg := config.Instance()

	options := game.DefaultOptions()
	if cfg.Game.TargetScore > 0 {
		options.TargetScore = cfg.Game.TargetScore
	}
	if cfg.Game.HandSize > 0 {
		options.HandSize = cfg.Game.HandSize
	}
	if cfg.Game.MinPlayers > 0 {
		options.MinParticipants = cfg.Game.MinPlayers
	}

	sessionStore := store.New(nil, options)
	pitBoss := room.NewPitBoss(sessionStore)
	pitBoss.StartShift()

	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		store:   sessionStore,
		pitBoss: pitBoss,
	}

	this.authRouter = this.Router.NewRoute().Subrouter()
	this.authRouter.Use(this.authMiddleware)

	// unauthorized endpoints
	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodPost).Path("/participant").Handler(this.postParticipant())
	}

	// requires bearer authorization
	{
		r := this.authRouter
		r.Methods(http.MethodGet).Path("/game/ws").Handler(this.getGameWS())
	}

	return this
}

func (m *Mux) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.FormValue("access_token")
		if token == "" {
			authHeader := strings.Split(r.Header.Get("Authorization"), " ")
			if len(authHeader) != 2 || strings.ToLower(authHeader[0]) != "bearer" {
				writeJSONError(w, http.StatusUnauthorized, nil)
				return
			}

			token = authHeader[1]
		}

		participantID, err := jwt.ValidParticipantID(token)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxParticipantKey, participantID)
		w.Header().Set("CardsAgainstAgility-ParticipantID", participantID)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}
