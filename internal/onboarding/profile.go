package onboarding

import (
	"fmt"
	"strconv"
)

// Profile is the typed view over the stored answers. Circumferences are nil
// when the user skipped them.
type Profile struct {
	Sex        string
	Age        int
	WeightKg   float64
	WeightUnit string
	HeightCm   float64
	HeightUnit string
	Goal       string
	Frequency  string
	Water      string
	NeckCm     *float64
	WaistCm    *float64
	HipCm      *float64
}

type Summary struct {
	BMI            float64  `json:"bmi"`
	BMICategory    string   `json:"bmi_category"`
	BodyFatPct     *float64 `json:"body_fat_pct,omitempty"`
	BMR            float64  `json:"bmr_kcal"`
	Multiplier     float64  `json:"activity_multiplier"`
	TDEE           float64  `json:"tdee_kcal"`
	TargetCalories float64  `json:"target_kcal"`
	WaterLiters    float64  `json:"water_liters"`
}

func LoadProfile(store Store) (*Profile, error) {
	values, err := store.All()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	required := func(key string) (string, error) {
		value, ok := values[key]
		if !ok || value == "" {
			return "", fmt.Errorf("%s: %w", key, ErrRequired)
		}
		return value, nil
	}
	number := func(key string) (float64, error) {
		raw, err := required(key)
		if err != nil {
			return 0, err
		}
		value, err := ParseDecimal(raw)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return value, nil
	}
	optional := func(key string) (*float64, error) {
		raw, ok := values[key]
		if !ok || raw == "" {
			return nil, nil
		}
		value, err := ParseDecimal(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		return &value, nil
	}

	profile := &Profile{
		WeightUnit: values[KeyWeightUnit],
		HeightUnit: values[KeyHeightUnit],
		Water:      values[KeyWater],
	}
	if profile.Sex, err = required(KeySex); err != nil {
		return nil, err
	}
	ageRaw, err := required(KeyAge)
	if err != nil {
		return nil, err
	}
	if profile.Age, err = strconv.Atoi(ageRaw); err != nil {
		return nil, fmt.Errorf("%s: %w: %q", KeyAge, ErrInvalid, ageRaw)
	}
	if profile.WeightKg, err = number(KeyWeight); err != nil {
		return nil, err
	}
	if profile.HeightCm, err = number(KeyHeight); err != nil {
		return nil, err
	}
	if profile.Goal, err = required(KeyGoal); err != nil {
		return nil, err
	}
	if profile.Frequency, err = required(KeyFrequency); err != nil {
		return nil, err
	}
	if profile.NeckCm, err = optional(KeyNeck); err != nil {
		return nil, err
	}
	if profile.WaistCm, err = optional(KeyWaist); err != nil {
		return nil, err
	}
	if profile.HipCm, err = optional(KeyHip); err != nil {
		return nil, err
	}
	return profile, nil
}

// Summarize derives the metrics shown at the end of the questionnaire. Body
// fat is only estimated when the needed circumferences were given and the
// formula yields a plausible value.
func (p *Profile) Summarize() (*Summary, error) {
	bmi, err := BMI(p.WeightKg, p.HeightCm)
	if err != nil {
		return nil, err
	}
	bmr, err := BMR(p.Sex, p.WeightKg, p.HeightCm, p.Age)
	if err != nil {
		return nil, err
	}
	multiplier, err := ActivityMultiplier(p.Frequency)
	if err != nil {
		return nil, err
	}
	tdee := bmr * multiplier
	target, err := GoalCalories(tdee, p.Goal, p.Sex)
	if err != nil {
		return nil, err
	}
	water, err := WaterTarget(p.WeightKg, p.Water)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		BMI:            Round(bmi, 1),
		BMICategory:    BMICategory(bmi),
		BMR:            Round(bmr, 0),
		Multiplier:     multiplier,
		TDEE:           Round(tdee, 0),
		TargetCalories: Round(target, 0),
		WaterLiters:    water,
	}

	if p.NeckCm != nil && p.WaistCm != nil {
		var hip float64
		if p.HipCm != nil {
			hip = *p.HipCm
		}
		if p.Sex == SexMale || p.HipCm != nil {
			// implausible circumferences only drop the estimate
			if bf, err := BodyFatNavy(p.Sex, p.HeightCm, *p.NeckCm, *p.WaistCm, hip); err == nil {
				bf = Round(bf, 1)
				summary.BodyFatPct = &bf
			}
		}
	}
	return summary, nil
}
