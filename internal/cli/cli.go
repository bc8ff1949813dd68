package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/thenoetrevino/listo/internal/client"
	"github.com/thenoetrevino/listo/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	API *client.Client
}

// NewCLI initializes the CLI with an API client built from the user config
func NewCLI() (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &CLI{
		API: client.New(cfg.Client.APIURL, 10*time.Second),
	}, nil
}

// Fail reports an API error through the formatter. Domain errors
// (not found, conflict, validation) terminate the process with their
// mapped exit code; anything else is returned for cobra to surface.
func Fail(formatter *OutputFormatter, code string, err error) error {
	exitCode := ExitError
	switch {
	case errors.Is(err, client.ErrNotFound):
		exitCode = ExitNotFound
	case errors.Is(err, client.ErrConflict):
		exitCode = ExitConflict
	case errors.Is(err, client.ErrValidation):
		exitCode = ExitValidation
	}

	if fmtErr := formatter.Error(code, err.Error()); fmtErr != nil {
		return fmtErr
	}
	if exitCode != ExitError {
		os.Exit(exitCode)
	}
	return err
}
