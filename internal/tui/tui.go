package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-ledger/internal/logger"
	"github.com/MKhiriev/go-ledger/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	controller Controller
	buildInfo  models.AppBuildInfo
	logger     *logger.Logger

	options []tea.ProgramOption
}

func New(controller Controller, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		controller: controller,
		buildInfo:  buildInfo,
		logger:     logger,
		options:    []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// LoginFlow runs the welcome, login and register screens until somebody is
// logged in. Returns ErrUserQuit on ctrl+c.
func (t *TUI) LoginFlow(ctx context.Context) (models.Identity, error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.controller),
		pageRegister: NewRegisterModel(ctx, t.controller),
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, err := t.run(ctx, root)
	if err != nil {
		return models.Identity{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Identity{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Identity{}, ErrUserQuit
	}

	t.logger.Info().Int64("user_id", result.identity.UserID).Msg("login flow finished")
	return result.identity, nil
}

// MainLoop runs the main menu for identity. logout is true when the user
// picked "Log in as different user" or the server stopped accepting the
// session.
func (t *TUI) MainLoop(ctx context.Context, identity models.Identity) (logout bool, err error) {
	finalModel, err := t.run(ctx, newMainLoopModel(ctx, t.controller, identity))
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}

func (t *TUI) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	options := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)
	return tea.NewProgram(model, options...).Run()
}
