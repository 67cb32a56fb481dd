package wizardui

import (
	"errors"
	"strings"
	"testing"

	"github.com/Rodrigojesussilva/Sem-errar-sub001/internal/onboarding"
	tea "github.com/charmbracelet/bubbletea"
)

type brokenStore struct {
	*onboarding.MemoryStore
}

func (s brokenStore) Set(key, value string) error {
	return errors.New("read-only filesystem")
}

func typeAndSubmit(t *testing.T, model Model, text string) Model {
	t.Helper()
	model.input.SetValue("")
	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	updated, _ = updated.(Model).Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model)
}

func TestModelWalksToSummary(t *testing.T) {
	store := onboarding.NewMemoryStore()
	model := New(onboarding.NewWizard(store, onboarding.DefaultScreens()))

	if !strings.Contains(model.View(), "Sexo") {
		t.Fatalf("expected first screen in view:\n%s", model.View())
	}

	for _, answer := range []string{"masculino", "30", "80", "178", "perder", "3-4", "auto", "38", "85"} {
		model = typeAndSubmit(t, model, answer)
		if model.Alert() != "" {
			t.Fatalf("answer %q raised alert %q", answer, model.Alert())
		}
	}

	view := model.View()
	for _, want := range []string{"Seu resumo", "IMC", "25.2", "2240 kcal", "2.8 L"} {
		if !strings.Contains(view, want) {
			t.Errorf("summary view missing %q:\n%s", want, view)
		}
	}

	_, command := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if command == nil {
		t.Fatal("enter on the summary should quit")
	}
	if _, ok := command().(tea.QuitMsg); !ok {
		t.Fatal("expected a quit message")
	}
}

func TestModelBackPrefillsPreviousAnswer(t *testing.T) {
	model := New(onboarding.NewWizard(onboarding.NewMemoryStore(), onboarding.DefaultScreens()))
	model = typeAndSubmit(t, model, "feminino")
	model = typeAndSubmit(t, model, "29")

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	model = updated.(Model)
	if got := model.input.Value(); got != "29" {
		t.Fatalf("expected prefilled age, got %q", got)
	}

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	model = updated.(Model)
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	model = updated.(Model)
	if model.Alert() == "" {
		t.Fatal("expected alert when going back from the first screen")
	}
}

func TestModelShowsValidationAlert(t *testing.T) {
	model := New(onboarding.NewWizard(onboarding.NewMemoryStore(), onboarding.DefaultScreens()))

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(Model)
	if model.Alert() != "Resposta obrigatória." {
		t.Fatalf("unexpected alert %q", model.Alert())
	}
	if !strings.Contains(model.View(), "Resposta obrigatória.") {
		t.Fatal("alert line should be rendered")
	}

	model = typeAndSubmit(t, model, "talvez")
	if !strings.HasPrefix(model.Alert(), "Resposta inválida") {
		t.Fatalf("unexpected alert %q", model.Alert())
	}

	model = typeAndSubmit(t, model, "masculino")
	if model.Alert() != "" {
		t.Fatalf("a valid answer should clear the alert, got %q", model.Alert())
	}
}

func TestModelShowsStorageAlert(t *testing.T) {
	store := brokenStore{MemoryStore: onboarding.NewMemoryStore()}
	model := New(onboarding.NewWizard(store, onboarding.DefaultScreens()))

	model = typeAndSubmit(t, model, "masculino")
	if !strings.HasPrefix(model.Alert(), "Não foi possível salvar") {
		t.Fatalf("unexpected alert %q", model.Alert())
	}
	if !strings.Contains(model.View(), "Sexo") {
		t.Fatal("wizard should stay on the same screen")
	}
}

func TestModelQuit(t *testing.T) {
	model := New(onboarding.NewWizard(onboarding.NewMemoryStore(), onboarding.DefaultScreens()))
	_, command := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if command == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := command().(tea.QuitMsg); !ok {
		t.Fatal("expected a quit message")
	}
}
