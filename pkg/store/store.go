package store

import (
	"sync"

	"cardsagainstagility-server/pkg/game"
	"cardsagainstagility-server/pkg/gamecode"

	"github.com/sirupsen/logrus"
)

// Store owns every session on this server instance along with the
// participant-id to session-id mapping. It is constructor-injected into the
// protocol layer so tests can run independent instances side by side.
// State lives only in memory for the lifetime of the process.
type Store struct {
	mu       sync.Mutex
	logger   logrus.FieldLogger
	options  game.Options
	sessions map[string]*game.Session

	// participantSession maps a participant to the session they last joined
	participantSession map[string]string
}

// New returns an empty store
func New(logger logrus.FieldLogger, options game.Options) *Store {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Store{
		logger:             logger,
		options:            options,
		sessions:           make(map[string]*game.Session),
		participantSession: make(map[string]string),
	}
}

// CreateSession allocates a fresh join code and registers the creator as the
// session's sole participant
func (s *Store) CreateSession(participantID, displayName string) (*game.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var code string
	for {
		var err error
		code, err = gamecode.Generate(gamecode.Length)
		if err != nil {
			return nil, err
		}

		if _, taken := s.sessions[code]; !taken {
			break
		}
	}

	session := game.NewSession(s.logger, code, game.Participant{ID: participantID, Nickname: displayName}, s.options)
	s.sessions[code] = session
	s.participantSession[participantID] = code

	s.logger.WithFields(logrus.Fields{
		"gameId":  code,
		"creator": participantID,
	}).Info("session created")

	return session, nil
}

// JoinSession adds the participant to an existing session. Joining a session
// you are already in is idempotent and returns the current state.
func (s *Store) JoinSession(participantID, displayName, sessionID string) (*game.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	session.AddParticipant(game.Participant{ID: participantID, Nickname: displayName})
	s.participantSession[participantID] = sessionID

	return session, nil
}

// Get returns the session for the given join code
func (s *Store) Get(sessionID string) (*game.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	return session, nil
}

// GetByParticipant returns the session the participant most recently joined
func (s *Store) GetByParticipant(participantID string) (*game.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessionID, ok := s.participantSession[participantID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	return session, nil
}
