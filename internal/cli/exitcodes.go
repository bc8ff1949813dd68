package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: network errors, server errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing required flags or invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: todo not found or label not found.
	ExitNotFound = 3

	// ExitConflict indicates the request conflicts with existing state.
	// Use for: creating a label whose name is already taken.
	ExitConflict = 4

	// ExitValidation indicates a validation error.
	// Use for: empty text, over-long names, or unknown label ids.
	ExitValidation = 5
)
