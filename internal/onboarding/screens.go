package onboarding

import (
	"fmt"
	"strconv"
	"strings"
)

type Kind int

const (
	KindChoice Kind = iota
	KindInteger
	KindWeight
	KindHeight
	KindLength
)

type Option struct {
	Value string
	Label string
}

// Screen is one step of the questionnaire. Numeric bounds are expressed in
// the stored unit (kg or cm).
type Screen struct {
	ID       string
	Title    string
	Prompt   string
	Key      string
	Kind     Kind
	Options  []Option
	Min      float64
	Max      float64
	Optional bool
	Skip     func(Store) bool
	// DayCount reads a bare whole number as days per week and picks the
	// option whose range holds it, instead of a list position.
	DayCount bool
	// Check validates a parsed measurement against earlier answers.
	Check func(cm float64, store Store) error
}

// DefaultScreens returns the questionnaire in presentation order.
func DefaultScreens() []Screen {
	return []Screen{
		{
			ID:     "sexo",
			Title:  "Sexo",
			Prompt: "Qual é o seu sexo biológico?",
			Key:    KeySex,
			Kind:   KindChoice,
			Options: []Option{
				{Value: SexMale, Label: "Masculino"},
				{Value: SexFemale, Label: "Feminino"},
			},
		},
		{
			ID:     "idade",
			Title:  "Idade",
			Prompt: "Quantos anos você tem?",
			Key:    KeyAge,
			Kind:   KindInteger,
			Min:    14,
			Max:    100,
		},
		{
			ID:     "peso",
			Title:  "Peso",
			Prompt: "Qual é o seu peso? (ex.: 72,5 kg ou 160 lb)",
			Key:    KeyWeight,
			Kind:   KindWeight,
			Min:    30,
			Max:    300,
		},
		{
			ID:     "altura",
			Title:  "Altura",
			Prompt: "Qual é a sua altura? (ex.: 178 cm, 1,78 m ou 5'10)",
			Key:    KeyHeight,
			Kind:   KindHeight,
			Min:    120,
			Max:    230,
		},
		{
			ID:     "objetivo",
			Title:  "Objetivo",
			Prompt: "Qual é o seu objetivo?",
			Key:    KeyGoal,
			Kind:   KindChoice,
			Options: []Option{
				{Value: GoalLose, Label: "Perder gordura"},
				{Value: GoalMaintain, Label: "Manter o peso"},
				{Value: GoalGain, Label: "Ganhar massa"},
			},
		},
		{
			ID:       "frequencia",
			Title:    "Frequência de treino",
			Prompt:   "Quantos dias por semana você treina?",
			Key:      KeyFrequency,
			Kind:     KindChoice,
			DayCount: true,
			Options: []Option{
				{Value: "0", Label: "Não treino"},
				{Value: "1-2", Label: "1 a 2 dias"},
				{Value: "3-4", Label: "3 a 4 dias"},
				{Value: "5-6", Label: "5 a 6 dias"},
				{Value: "7", Label: "Todos os dias"},
			},
		},
		{
			ID:     "agua",
			Title:  "Água",
			Prompt: "Quanta água você quer beber por dia?",
			Key:    KeyWater,
			Kind:   KindChoice,
			Options: []Option{
				{Value: WaterAuto, Label: "Calcular pelo meu peso"},
				{Value: "1.5", Label: "1,5 litro"},
				{Value: "2", Label: "2 litros"},
				{Value: "2.5", Label: "2,5 litros"},
				{Value: "3", Label: "3 litros"},
				{Value: "3.5", Label: "3,5 litros"},
			},
		},
		{
			ID:       "pescoco",
			Title:    "Pescoço",
			Prompt:   "Circunferência do pescoço (cm ou in). Deixe em branco para pular.",
			Key:      KeyNeck,
			Kind:     KindLength,
			Min:      20,
			Max:      70,
			Optional: true,
		},
		{
			ID:       "cintura",
			Title:    "Cintura",
			Prompt:   "Circunferência da cintura na altura do umbigo (cm ou in). Deixe em branco para pular.",
			Key:      KeyWaist,
			Kind:     KindLength,
			Min:      40,
			Max:      200,
			Optional: true,
			Check:    checkWaist,
		},
		{
			ID:       "quadril",
			Title:    "Quadril",
			Prompt:   "Circunferência do quadril (cm ou in). Deixe em branco para pular.",
			Key:      KeyHip,
			Kind:     KindLength,
			Min:      50,
			Max:      200,
			Optional: true,
			Skip: func(store Store) bool {
				sex, _, _ := lookup(store, KeySex)
				return sex != SexFemale
			},
		},
	}
}

// Parse validates raw input and returns the key/value pairs to persist.
func (s *Screen) Parse(raw string, store Store) (map[string]string, error) {
	input := strings.TrimSpace(raw)
	if input == "" {
		return nil, fmt.Errorf("%s: %w", s.Title, ErrRequired)
	}

	switch s.Kind {
	case KindChoice:
		value, ok := s.matchOption(input)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not one of the options", ErrInvalid, input)
		}
		return map[string]string{s.Key: value}, nil

	case KindInteger:
		value, err := strconv.Atoi(input)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a whole number", ErrInvalid, input)
		}
		if err := s.checkBounds(float64(value)); err != nil {
			return nil, err
		}
		return map[string]string{s.Key: strconv.Itoa(value)}, nil

	case KindWeight:
		defaultUnit := UnitKg
		if unit, ok, _ := lookup(store, KeyWeightUnit); ok {
			defaultUnit = unit
		}
		kg, unit, err := ParseWeight(input, defaultUnit)
		if err != nil {
			return nil, err
		}
		if err := s.checkBounds(kg); err != nil {
			return nil, err
		}
		return map[string]string{s.Key: formatStored(kg), KeyWeightUnit: unit}, nil

	case KindHeight:
		cm, unit, err := ParseHeight(input)
		if err != nil {
			return nil, err
		}
		if err := s.checkBounds(cm); err != nil {
			return nil, err
		}
		return map[string]string{s.Key: formatStored(cm), KeyHeightUnit: unit}, nil

	case KindLength:
		cm, err := parseLength(input)
		if err != nil {
			return nil, err
		}
		if err := s.checkBounds(cm); err != nil {
			return nil, err
		}
		if s.Check != nil {
			if err := s.Check(cm, store); err != nil {
				return nil, err
			}
		}
		return map[string]string{s.Key: formatStored(cm)}, nil
	}

	return nil, fmt.Errorf("%w: unsupported screen kind %d", ErrInvalid, s.Kind)
}

// Previous renders the stored answer the way the user originally typed it,
// or "" when the screen has not been answered yet.
func (s *Screen) Previous(store Store) string {
	value, ok, err := lookup(store, s.Key)
	if err != nil || !ok {
		return ""
	}

	switch s.Kind {
	case KindWeight:
		kg, err := ParseDecimal(value)
		if err != nil {
			return value
		}
		unit, _, _ := lookup(store, KeyWeightUnit)
		return DisplayWeight(kg, unit)
	case KindHeight:
		cm, err := ParseDecimal(value)
		if err != nil {
			return value
		}
		unit, _, _ := lookup(store, KeyHeightUnit)
		return DisplayHeight(cm, unit)
	case KindLength:
		return value + " cm"
	}
	return value
}

// Keys lists every key the screen writes.
func (s *Screen) Keys() []string {
	switch s.Kind {
	case KindWeight:
		return []string{s.Key, KeyWeightUnit}
	case KindHeight:
		return []string{s.Key, KeyHeightUnit}
	}
	return []string{s.Key}
}

// matchOption accepts the option value, its label, or its 1-based position.
// Decimal commas are read as dots, so "1,5" matches the value "1.5".
func (s *Screen) matchOption(input string) (string, bool) {
	normalized := strings.ReplaceAll(input, ",", ".")
	number, numErr := strconv.Atoi(normalized)
	if s.DayCount && numErr == nil {
		return frequencyForDays(number)
	}

	for _, option := range s.Options {
		if strings.EqualFold(option.Value, normalized) || strings.EqualFold(option.Label, input) {
			return option.Value, true
		}
	}
	if numErr == nil && number >= 1 && number <= len(s.Options) {
		return s.Options[number-1].Value, true
	}
	return "", false
}

func (s *Screen) checkBounds(value float64) error {
	if s.Min == 0 && s.Max == 0 {
		return nil
	}
	if value < s.Min || value > s.Max {
		return fmt.Errorf("%w: %s must be between %s and %s", ErrInvalid, strings.ToLower(s.Title),
			FormatDecimal(s.Min), FormatDecimal(s.Max))
	}
	return nil
}

func parseLength(raw string) (float64, error) {
	match := measureRe.FindStringSubmatch(raw)
	if match == nil {
		return 0, fmt.Errorf("%w: measurement %q", ErrInvalid, raw)
	}
	value, err := ParseDecimal(match[1])
	if err != nil {
		return 0, err
	}
	switch strings.ToLower(match[2]) {
	case "", UnitCm:
		return value, nil
	case "in", "pol":
		return InchesToCm(value), nil
	}
	return 0, fmt.Errorf("%w: unknown length unit %q", ErrInvalid, match[2])
}

func frequencyForDays(days int) (string, bool) {
	switch {
	case days == 0:
		return "0", true
	case days >= 1 && days <= 2:
		return "1-2", true
	case days >= 3 && days <= 4:
		return "3-4", true
	case days >= 5 && days <= 6:
		return "5-6", true
	case days == 7:
		return "7", true
	}
	return "", false
}

// checkWaist keeps the answers usable by the circumference body fat
// formula: a man's waist must exceed his neck.
func checkWaist(waist float64, store Store) error {
	sex, _, _ := lookup(store, KeySex)
	neck, ok := storedNumber(store, KeyNeck)
	if sex != SexMale || !ok {
		return nil
	}
	if waist <= neck {
		return fmt.Errorf("%w: waist must be larger than neck (%s cm)", ErrInvalid, FormatDecimal(neck))
	}
	return nil
}

func storedNumber(store Store, key string) (float64, bool) {
	raw, ok, err := lookup(store, key)
	if err != nil || !ok {
		return 0, false
	}
	value, err := ParseDecimal(raw)
	if err != nil {
		return 0, false
	}
	return value, true
}
