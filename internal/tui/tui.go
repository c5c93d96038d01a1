package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-port-ops/internal/logger"
	"github.com/MKhiriev/go-port-ops/internal/service"
	"github.com/MKhiriev/go-port-ops/models"
)

// TUI runs the interactive sign-in flow of portctl.
type TUI struct {
	auth      service.AuthService
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
	options   []tea.ProgramOption
}

// New creates a TUI over auth. Program options are appended to the defaults
// (alternate screen, cancellation through ctx).
func New(auth service.AuthService, buildInfo models.AppBuildInfo, log *logger.Logger, opts ...tea.ProgramOption) *TUI {
	return &TUI{
		auth:      auth,
		buildInfo: buildInfo,
		logger:    log,
		options:   opts,
	}
}

// LoginFlow shows the sign-in menu and blocks until the user signs in, signs
// up or quits. A non-empty email opens the sign-in form directly with the
// email filled in. Returns [ErrUserQuit] when the user leaves without an
// account.
func (t *TUI) LoginFlow(ctx context.Context, email string) (models.User, error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.auth, email),
		pageRegister: NewRegisterModel(ctx, t.auth),
	}

	start := pageMenu
	if email != "" {
		start = pageLogin
	}

	root := NewRootModel(pages, start, t.buildInfo)
	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, t.options...)

	finalModel, err := tea.NewProgram(root, opts...).Run()
	if err != nil {
		t.logger.Err(err).Msg("login form stopped")
		return models.User{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.User{}, ErrUserQuit
	}

	t.logger.Info().Str("email", result.user.Email).Msg("signed in via login form")
	return result.user, nil
}
