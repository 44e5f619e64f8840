package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Simulation error messages
	ErrMsgSimulateFailed     = "Failed to simulate kills"
	ErrMsgGetDropTableFailed = "Failed to get drop table"

	// Price lookup error messages
	ErrMsgGetPriceFailed = "Failed to get price"

	// RPS error messages
	ErrMsgPlayRPSFailed = "Failed to play rock-paper-scissors"
)
