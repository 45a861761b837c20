package model

import "errors"

// UserError is an error that is safe to return in a response
type UserError string

func (u UserError) Error() string {
	return string(u)
}

// ErrTournamentNotFound is returned by a Store when the UUID is unknown
var ErrTournamentNotFound = errors.New("tournament not found")

// ErrDuplicateKey happens if a tournament is created twice with the same UUID
var ErrDuplicateKey = errors.New("duplicate key constraint violation")

// ErrWrongFormat is returned when an operation does not apply to the tournament format
var ErrWrongFormat = UserError("operation is not supported by this tournament format")

// ErrRoundNotComplete is returned when advancing before every court has a result
var ErrRoundNotComplete = UserError("every court must be completed before the next round")

// ErrPartialScore is returned when only one side of a score is entered
var ErrPartialScore = UserError("both scores must be entered, or neither")
