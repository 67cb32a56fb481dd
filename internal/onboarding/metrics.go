package onboarding

import (
	"fmt"
	"math"
)

// Activity multipliers applied to the basal metabolic rate, keyed by the
// training frequency answer.
var activityMultipliers = map[string]float64{
	"0":   1.2,
	"1-2": 1.375,
	"3-4": 1.55,
	"5-6": 1.725,
	"7":   1.9,
}

const (
	deficitKcal       = 500
	surplusKcal       = 300
	minCaloriesMale   = 1500
	minCaloriesFemale = 1200
	waterMlPerKg      = 35
)

func BMI(weightKg, heightCm float64) (float64, error) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, fmt.Errorf("%w: height and weight must be positive", ErrInvalid)
	}
	meters := heightCm / 100
	return weightKg / (meters * meters), nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Abaixo do peso"
	case bmi < 25:
		return "Peso normal"
	case bmi < 30:
		return "Sobrepeso"
	case bmi < 35:
		return "Obesidade grau I"
	case bmi < 40:
		return "Obesidade grau II"
	default:
		return "Obesidade grau III"
	}
}

// BodyFatNavy estimates body-fat percentage with the U.S. Navy circumference
// method. All lengths are centimetres; hip is only used for women.
func BodyFatNavy(sex string, heightCm, neckCm, waistCm, hipCm float64) (float64, error) {
	if heightCm <= 0 || neckCm <= 0 || waistCm <= 0 {
		return 0, fmt.Errorf("%w: measurements must be positive", ErrInvalid)
	}

	var density float64
	switch sex {
	case SexMale:
		if waistCm <= neckCm {
			return 0, fmt.Errorf("%w: waist must be larger than neck", ErrInvalid)
		}
		density = 1.0324 - 0.19077*math.Log10(waistCm-neckCm) + 0.15456*math.Log10(heightCm)
	case SexFemale:
		if hipCm <= 0 {
			return 0, fmt.Errorf("%w: hip measurement is required", ErrInvalid)
		}
		if waistCm+hipCm <= neckCm {
			return 0, fmt.Errorf("%w: waist plus hip must be larger than neck", ErrInvalid)
		}
		density = 1.29579 - 0.35004*math.Log10(waistCm+hipCm-neckCm) + 0.22100*math.Log10(heightCm)
	default:
		return 0, fmt.Errorf("%w: unknown sex %q", ErrInvalid, sex)
	}

	bf := 495/density - 450
	if bf <= 0 || bf >= 70 {
		return 0, fmt.Errorf("%w: measurements give an implausible estimate", ErrInvalid)
	}
	return bf, nil
}

// BMR uses the Mifflin-St Jeor equation.
func BMR(sex string, weightKg, heightCm float64, age int) (float64, error) {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	switch sex {
	case SexMale:
		return base + 5, nil
	case SexFemale:
		return base - 161, nil
	default:
		return 0, fmt.Errorf("%w: unknown sex %q", ErrInvalid, sex)
	}
}

func ActivityMultiplier(frequency string) (float64, error) {
	multiplier, ok := activityMultipliers[frequency]
	if !ok {
		return 0, fmt.Errorf("%w: unknown training frequency %q", ErrInvalid, frequency)
	}
	return multiplier, nil
}

func TDEE(bmr float64, frequency string) (float64, error) {
	multiplier, err := ActivityMultiplier(frequency)
	if err != nil {
		return 0, err
	}
	return bmr * multiplier, nil
}

// GoalCalories adjusts maintenance calories for the goal, never dropping
// below the per-sex floor when cutting.
func GoalCalories(tdee float64, goal, sex string) (float64, error) {
	switch goal {
	case GoalMaintain:
		return tdee, nil
	case GoalGain:
		return tdee + surplusKcal, nil
	case GoalLose:
		floor := float64(minCaloriesMale)
		if sex == SexFemale {
			floor = minCaloriesFemale
		}
		return math.Max(tdee-deficitKcal, floor), nil
	default:
		return 0, fmt.Errorf("%w: unknown goal %q", ErrInvalid, goal)
	}
}

// WaterTarget returns litres per day: the user's explicit preference, or
// 35 ml per kilogram when the preference is "auto".
func WaterTarget(weightKg float64, preference string) (float64, error) {
	if preference == "" || preference == WaterAuto {
		if weightKg <= 0 {
			return 0, fmt.Errorf("%w: weight is required for an automatic water target", ErrInvalid)
		}
		return Round(weightKg*waterMlPerKg/1000, 1), nil
	}
	liters, err := ParseDecimal(preference)
	if err != nil {
		return 0, err
	}
	if liters <= 0 {
		return 0, fmt.Errorf("%w: water target must be positive", ErrInvalid)
	}
	return liters, nil
}
