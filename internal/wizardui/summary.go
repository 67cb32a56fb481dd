package wizardui

import (
	"fmt"
	"strings"

	"github.com/Rodrigojesussilva/Sem-errar-sub001/internal/onboarding"
	"github.com/charmbracelet/lipgloss"
)

var goalLabels = map[string]string{
	onboarding.GoalLose:     "Perder gordura",
	onboarding.GoalMaintain: "Manter o peso",
	onboarding.GoalGain:     "Ganhar massa",
}

// RenderSummary formats the computed metrics, showing weight and height in
// the units the user answered with.
func RenderSummary(styles Styles, profile *onboarding.Profile, summary *onboarding.Summary) string {
	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, styles.Label.Render(label), styles.Value.Render(value))
	}

	goal := goalLabels[profile.Goal]
	if goal == "" {
		goal = profile.Goal
	}

	rows := []string{
		row("Peso", onboarding.DisplayWeight(profile.WeightKg, profile.WeightUnit)),
		row("Altura", onboarding.DisplayHeight(profile.HeightCm, profile.HeightUnit)),
		row("IMC", fmt.Sprintf("%s (%s)", onboarding.FormatDecimal(summary.BMI), summary.BMICategory)),
	}
	if summary.BodyFatPct != nil {
		rows = append(rows, row("Gordura corporal", onboarding.FormatDecimal(*summary.BodyFatPct)+" %"))
	}
	rows = append(rows,
		row("Metabolismo basal", fmt.Sprintf("%.0f kcal", summary.BMR)),
		row("Gasto diário", fmt.Sprintf("%.0f kcal (x%g)", summary.TDEE, summary.Multiplier)),
		row("Objetivo", goal),
		row("Meta calórica", fmt.Sprintf("%.0f kcal", summary.TargetCalories)),
		row("Água", onboarding.FormatDecimal(summary.WaterLiters)+" L por dia"),
	)

	return styles.Box.Render(strings.Join(rows, "\n"))
}
