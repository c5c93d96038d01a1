package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-port-ops/internal/app"
	"github.com/MKhiriev/go-port-ops/internal/service"
	"github.com/MKhiriev/go-port-ops/models"
)

const (
	registerName = iota
	registerEmail
	registerPassword
	registerRepeat
	registerCompany
	registerFieldCount
)

// RegisterModel is the Bubble Tea model for the sign-up screen. It renders five
// text inputs (name, email, password, password confirmation and an optional
// company) and dispatches an async registration command on form submission.
// A successful registration signs the user in, so [RegisterResult] finishes the
// flow the same way [LoginResult] does.
type RegisterModel struct {
	ctx  context.Context
	auth service.AuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewRegisterModel creates a [RegisterModel] with the name field focused.
func NewRegisterModel(ctx context.Context, auth service.AuthService) *RegisterModel {
	fields := make([]textinput.Model, registerFieldCount)

	fields[registerName] = textinput.New()
	fields[registerName].Placeholder = "name"
	fields[registerName].Width = 40
	fields[registerName].Focus()

	fields[registerEmail] = textinput.New()
	fields[registerEmail].Placeholder = "email"
	fields[registerEmail].CharLimit = 254
	fields[registerEmail].Width = 40

	fields[registerPassword] = textinput.New()
	fields[registerPassword].Placeholder = "password"
	fields[registerPassword].EchoMode = textinput.EchoPassword
	fields[registerPassword].EchoCharacter = '*'
	fields[registerPassword].Width = 40

	fields[registerRepeat] = textinput.New()
	fields[registerRepeat].Placeholder = "repeat password"
	fields[registerRepeat].EchoMode = textinput.EchoPassword
	fields[registerRepeat].EchoCharacter = '*'
	fields[registerRepeat].Width = 40

	fields[registerCompany] = textinput.New()
	fields[registerCompany].Placeholder = "company (optional)"
	fields[registerCompany].Width = 40

	return &RegisterModel{
		ctx:    ctx,
		auth:   auth,
		inputs: fields,
	}
}

// Init implements [tea.Model].
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [RegisterResult] clears submitting state; on error, populates errMsg.
//   - esc              goes back to the menu.
//   - tab, shift+tab   move focus between inputs.
//   - enter            validates inputs (name, email and both passwords are
//     required and the passwords must match) and dispatches the async
//     registration command.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeServerUnavailableError(result.Err)
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			req := models.RegisterRequest{
				Name:     strings.TrimSpace(m.inputs[registerName].Value()),
				Email:    strings.TrimSpace(m.inputs[registerEmail].Value()),
				Password: m.inputs[registerPassword].Value(),
				Company:  strings.TrimSpace(m.inputs[registerCompany].Value()),
			}
			repeat := m.inputs[registerRepeat].Value()

			if req.Name == "" || req.Email == "" || req.Password == "" || repeat == "" {
				m.errMsg = "name, email and password are required"
				return m, nil
			}
			if req.Password != repeat {
				m.errMsg = app.MsgPasswordsDoNotMatch
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(req)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *RegisterModel) View() string {
	const labelWidth = 15

	var b strings.Builder
	b.WriteString("Field           │ Value\n")
	b.WriteString("────────────────┼────────────────────────────────────\n")
	renderField(&b, "Name", labelWidth, m.inputs[registerName].View())
	renderField(&b, "Email", labelWidth, m.inputs[registerEmail].View())
	renderField(&b, "Password", labelWidth, m.inputs[registerPassword].View())
	renderField(&b, "Repeat password", labelWidth, m.inputs[registerRepeat].View())
	renderField(&b, "Company", labelWidth, m.inputs[registerCompany].View())
	renderFormFooter(&b, "Create account", m.submitting, m.errMsg)

	return renderPage("CREATE ACCOUNT", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		user, err := auth.Register(ctx, req)
		return RegisterResult{User: user, Err: err}
	}
}

func (m *RegisterModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
