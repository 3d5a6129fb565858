package game

import "errors"

// ErrNotCreator is returned when someone other than the session's creator tries to start it
var ErrNotCreator = errors.New("only the creator can start the game")

// ErrNotEnoughPlayers is returned when a start is attempted with fewer than three participants
var ErrNotEnoughPlayers = errors.New("not enough players")

// ErrAlreadyStarted is returned when a start is attempted on a running game
var ErrAlreadyStarted = errors.New("game has already started")

// ErrNotStarted is returned when a round action is attempted before the first deal
var ErrNotStarted = errors.New("game has not started")

// ErrGameOver is returned when an action is attempted on an ended game
var ErrGameOver = errors.New("game is over")

// ErrJudgeCannotSubmit is returned when the current judge tries to submit an answer card
var ErrJudgeCannotSubmit = errors.New("the judge cannot submit a card")

// ErrCardNotHeld is returned when a participant submits a card that is not in their hand
var ErrCardNotHeld = errors.New("card is not in your hand")

// ErrNotJudge is returned when someone other than the current judge performs a judge-only action
var ErrNotJudge = errors.New("only the judge can do that")

// ErrNotParticipant is returned when the named player is not part of the session
var ErrNotParticipant = errors.New("player is not in the game")
