// Package errors provides structured error handling for quest-api.
//
// This package provides:
//   - Structured errors with codes, messages, and metadata
//   - HTTP status mapping for the handler layer
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("character progress not found")
//	err := errors.InvalidArgumentf("invalid accuracy: %f", accuracy)
//
// Adding metadata:
//
//	err := errors.NotFound("session not found").
//	    WithMeta("session_id", sessionID)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, id); err != nil {
//	    return errors.Wrap(err, "failed to get character progress")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
//	code := errors.GetCode(err)
//	status := code.HTTPStatus()
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("user_id", input.UserID, vb)
//	errors.ValidateRange("difficulty", input.Difficulty, 1, 5, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return domain-specific errors (NotFound, AlreadyExists)
//   - Include relevant IDs in metadata
//   - Wrap storage errors with context
//
// Rules and orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Return the domain codes (InvalidState, Expired, InvalidSessionState,
//     SessionFull) when a rule rejects an operation
//
// Handler layer:
//   - Convert errors to an HTTP status via Code.HTTPStatus
//   - Extract user-facing messages with GetMessage
package errors
