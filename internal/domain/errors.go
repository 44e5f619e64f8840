package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Drop table acquisition errors
	ErrMsgMonsterNotFound   = "monster not found"
	ErrMsgMalformedResponse = "malformed wiki response"
	ErrMsgNoDropData        = "no drop data"
	ErrMsgFetchFailed       = "wiki fetch failed"

	// Simulation errors
	ErrMsgInvalidKillCount = "invalid kill count"

	// Price lookup errors
	ErrMsgItemNotFound = "item not found"

	// RPS errors
	ErrMsgInvalidMove = "invalid move"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Drop table acquisition errors
	ErrMonsterNotFound   = errors.New(ErrMsgMonsterNotFound)
	ErrMalformedResponse = errors.New(ErrMsgMalformedResponse)
	ErrNoDropData        = errors.New(ErrMsgNoDropData)
	ErrFetchFailed       = errors.New(ErrMsgFetchFailed)

	// Simulation errors
	ErrInvalidKillCount = errors.New(ErrMsgInvalidKillCount)

	// Price lookup errors
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	// RPS errors
	ErrInvalidMove = errors.New(ErrMsgInvalidMove)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
