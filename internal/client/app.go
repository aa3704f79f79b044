package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ledger/internal/logger"
	"github.com/MKhiriev/go-ledger/internal/tui"
)

type App struct {
	ui     UI
	logger *logger.Logger
}

func NewApp(ui UI, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, ErrNoUI
	}

	return &App{ui: ui, logger: logger}, nil
}

// Run shows the login flow, then the main menu. "Log in as different user"
// and a rejected token go back to the login flow; leaving the login flow ends the process
// without an error.
func (a *App) Run(ctx context.Context) error {
	for {
		identity, err := a.ui.LoginFlow(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			a.logger.Info().Msg("user left before logging in")
			return nil
		}
		if err != nil {
			return fmt.Errorf("login flow: %w", err)
		}

		a.logger.Info().Int64("user_id", identity.UserID).Msg("entering main menu")

		logout, err := a.ui.MainLoop(ctx, identity)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		a.logger.Info().Int64("user_id", identity.UserID).Msg("switching user")
	}
}
