package onboarding

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrFinished = errors.New("questionnaire already finished")
	ErrStorage  = errors.New("could not save answer")
)

// Wizard walks the screens in order. Answers are persisted before the
// wizard advances, so a crash never leaves the cursor ahead of the data.
type Wizard struct {
	store   Store
	screens []Screen
	index   int
}

func NewWizard(store Store, screens []Screen) *Wizard {
	w := &Wizard{store: store, screens: screens}
	w.index = w.nextVisible(0)
	return w
}

func (w *Wizard) Store() Store {
	return w.store
}

// Current returns the active screen, or nil once every screen is answered.
func (w *Wizard) Current() *Screen {
	if w.index >= len(w.screens) {
		return nil
	}
	return &w.screens[w.index]
}

func (w *Wizard) Done() bool {
	return w.index >= len(w.screens)
}

// Previous returns the stored answer of the active screen for prefilling.
func (w *Wizard) Previous() string {
	screen := w.Current()
	if screen == nil {
		return ""
	}
	return screen.Previous(w.store)
}

// Answer validates input for the active screen, saves it and moves on.
// Validation failures wrap ErrRequired or ErrInvalid; persistence failures
// wrap ErrStorage and leave the wizard on the same screen.
func (w *Wizard) Answer(input string) error {
	screen := w.Current()
	if screen == nil {
		return ErrFinished
	}

	if screen.Optional && strings.TrimSpace(input) == "" {
		for _, key := range screen.Keys() {
			if err := w.store.Delete(key); err != nil {
				return fmt.Errorf("%w: %s: %w", ErrStorage, key, err)
			}
		}
		w.index = w.nextVisible(w.index + 1)
		return nil
	}

	values, err := screen.Parse(input, w.store)
	if err != nil {
		return err
	}
	for _, key := range screen.Keys() {
		value, ok := values[key]
		if !ok {
			continue
		}
		if err := w.store.Set(key, value); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrStorage, key, err)
		}
	}

	w.index = w.nextVisible(w.index + 1)
	return nil
}

// Back moves to the previous visible screen. It reports false on the first screen.
func (w *Wizard) Back() bool {
	for i := w.index - 1; i >= 0; i-- {
		if !w.skipped(i) {
			w.index = i
			return true
		}
	}
	return false
}

// Resume jumps to the first visible screen without a stored answer.
func (w *Wizard) Resume() {
	for i := range w.screens {
		if w.skipped(i) {
			continue
		}
		if _, ok, _ := lookup(w.store, w.screens[i].Key); !ok {
			w.index = i
			return
		}
	}
	w.index = len(w.screens)
}

// Restart clears every answer and returns to the first screen.
func (w *Wizard) Restart() error {
	if err := Clear(w.store); err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	w.index = w.nextVisible(0)
	return nil
}

// Progress returns the 1-based position of the active screen among the
// visible ones and the number of visible screens.
func (w *Wizard) Progress() (int, int) {
	step, total := 0, 0
	for i := range w.screens {
		if w.skipped(i) {
			continue
		}
		total++
		if i <= w.index {
			step = total
		}
	}
	if w.Done() {
		step = total
	}
	return step, total
}

func (w *Wizard) skipped(i int) bool {
	skip := w.screens[i].Skip
	return skip != nil && skip(w.store)
}

func (w *Wizard) nextVisible(from int) int {
	for i := from; i < len(w.screens); i++ {
		if !w.skipped(i) {
			return i
		}
	}
	return len(w.screens)
}
