package wizardui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Rodrigojesussilva/Sem-errar-sub001/internal/onboarding"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Model drives an onboarding.Wizard from the terminal. Every screen shows
// a single text input prefilled with the stored answer.
type Model struct {
	wizard *onboarding.Wizard
	input  textinput.Model
	keys   KeyMap
	styles Styles

	alert   string
	profile *onboarding.Profile
	summary *onboarding.Summary
}

func New(wizard *onboarding.Wizard) Model {
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 32
	input.Focus()

	model := Model{
		wizard: wizard,
		input:  input,
		keys:   DefaultKeyMap,
		styles: DefaultStyles(),
	}
	model.enterScreen()
	return model
}

// Run starts the wizard on the current terminal and blocks until the user
// quits or ctx is cancelled.
func Run(ctx context.Context, wizard *onboarding.Wizard) error {
	program := tea.NewProgram(New(wizard), tea.WithContext(ctx))
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

func (model Model) Init() tea.Cmd {
	return textinput.Blink
}

func (model Model) Alert() string {
	return model.alert
}

func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	keyMessage, ok := message.(tea.KeyMsg)
	if !ok {
		var command tea.Cmd
		model.input, command = model.input.Update(message)
		return model, command
	}

	switch {
	case key.Matches(keyMessage, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(keyMessage, model.keys.Back):
		if !model.wizard.Back() {
			model.alert = "Você já está na primeira pergunta."
			return model, nil
		}
		model.alert = ""
		model.enterScreen()
		return model, nil

	case key.Matches(keyMessage, model.keys.Restart):
		if err := model.wizard.Restart(); err != nil {
			model.alert = alertFor(err)
			return model, nil
		}
		model.alert = ""
		model.enterScreen()
		return model, nil

	case key.Matches(keyMessage, model.keys.Submit):
		if model.wizard.Done() {
			return model, tea.Quit
		}
		if err := model.wizard.Answer(model.input.Value()); err != nil {
			model.alert = alertFor(err)
			return model, nil
		}
		model.alert = ""
		model.enterScreen()
		return model, nil
	}

	if model.wizard.Done() {
		return model, nil
	}
	var command tea.Cmd
	model.input, command = model.input.Update(message)
	return model, command
}

// enterScreen prefills the input for the active screen, or computes the
// summary once every screen has been answered.
func (model *Model) enterScreen() {
	model.profile, model.summary = nil, nil
	if !model.wizard.Done() {
		model.input.SetValue(model.wizard.Previous())
		model.input.CursorEnd()
		return
	}

	profile, err := onboarding.LoadProfile(model.wizard.Store())
	if err != nil {
		model.alert = alertFor(err)
		return
	}
	summary, err := profile.Summarize()
	if err != nil {
		model.alert = alertFor(err)
		return
	}
	model.profile, model.summary = profile, summary
}

func (model Model) View() string {
	var b strings.Builder
	b.WriteString(model.styles.Header.Render("Sem Errar"))
	step, total := model.wizard.Progress()
	b.WriteString(model.styles.Progress.Render(fmt.Sprintf("  %d/%d", step, total)))
	b.WriteString("\n")

	if model.wizard.Done() {
		b.WriteString(model.styles.Title.Render("Seu resumo"))
		b.WriteString("\n")
		if model.summary != nil {
			b.WriteString(RenderSummary(model.styles, model.profile, model.summary))
			b.WriteString("\n")
		}
	} else {
		screen := model.wizard.Current()
		b.WriteString(model.styles.Title.Render(screen.Title))
		b.WriteString("\n")
		b.WriteString(model.styles.Prompt.Render(screen.Prompt))
		b.WriteString("\n")
		for i, option := range screen.Options {
			b.WriteString(model.styles.Option.Render(fmt.Sprintf("%d. %s", i+1, option.Label)))
			b.WriteString("\n")
		}
		b.WriteString(model.input.View())
		b.WriteString("\n")
	}

	if model.alert != "" {
		b.WriteString(model.styles.Alert.Render(model.alert))
		b.WriteString("\n")
	}

	var help []string
	for _, binding := range model.keys.help() {
		help = append(help, binding.Help().Key+" "+binding.Help().Desc)
	}
	b.WriteString(model.styles.Help.Render(strings.Join(help, " · ")))
	return b.String()
}

func alertFor(err error) string {
	switch {
	case errors.Is(err, onboarding.ErrStorage):
		return "Não foi possível salvar sua resposta: " + err.Error()
	case errors.Is(err, onboarding.ErrRequired):
		return "Resposta obrigatória."
	case errors.Is(err, onboarding.ErrInvalid):
		return "Resposta inválida: " + err.Error()
	default:
		return "Erro: " + err.Error()
	}
}
