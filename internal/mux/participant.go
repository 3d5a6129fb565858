package mux

import (
	"errors"
	"net/http"
	"regexp"

	"cardsagainstagility-server/internal/jwt"
	"cardsagainstagility-server/internal/util"

	"github.com/google/uuid"
)

// participantPayload is the optional request body for participant creation
type participantPayload struct {
	DisplayName string `json:"displayName"`
}

type participantResponse struct {
	ParticipantID string `json:"participantId"`
	DisplayName   string `json:"displayName"`
	JWT           string `json:"jwt"`
}

var validDisplayNameRx = regexp.MustCompile(`^[\p{L}\p{N} ]{0,40}\z`)

// postParticipant issues a fresh anonymous identity: a participant id plus a
// bearer credential for the websocket endpoint. There are no accounts; a
// participant exists for as long as somebody holds its token.
func (m *Mux) postParticipant() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp participantPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if !validDisplayNameRx.MatchString(pp.DisplayName) {
			writeJSONError(w, http.StatusBadRequest, errors.New("display name must only contain letters, numbers, and spaces, and be 40 characters or less"))
			return
		}

		displayName := pp.DisplayName
		if displayName == "" {
			displayName = util.GetRandomName()
		}

		participantID := uuid.New().String()
		signed, err := jwt.Sign(participantID)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusCreated, participantResponse{
			ParticipantID: participantID,
			DisplayName:   displayName,
			JWT:           signed,
		})
	}
}
