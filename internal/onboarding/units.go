package onboarding

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	KgPerLb       = 0.453592
	CmPerInch     = 2.54
	InchesPerFoot = 12
)

func LbToKg(lb float64) float64 { return lb * KgPerLb }

func KgToLb(kg float64) float64 { return kg / KgPerLb }

func InchesToCm(in float64) float64 { return in * CmPerInch }

func CmToInches(cm float64) float64 { return cm / CmPerInch }

func FeetInchesToCm(feet, inches float64) float64 {
	return InchesToCm(feet*InchesPerFoot + inches)
}

// CmToFeetInches splits a length into whole feet and inches rounded to one
// decimal, carrying into the next foot when the inches round up to 12.
func CmToFeetInches(cm float64) (int, float64) {
	total := CmToInches(cm)
	feet := int(total / InchesPerFoot)
	inches := Round(total-float64(feet)*InchesPerFoot, 1)
	if inches >= InchesPerFoot {
		feet++
		inches -= InchesPerFoot
	}
	return feet, inches
}

func Round(value float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(value*scale) / scale
}

// ParseDecimal accepts both "72.5" and "72,5".
func ParseDecimal(raw string) (float64, error) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if cleaned == "" {
		return 0, ErrRequired
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalid, raw)
	}
	return value, nil
}

// FormatDecimal renders a stored value with at most one decimal place.
func FormatDecimal(value float64) string {
	return strconv.FormatFloat(Round(value, 1), 'f', -1, 64)
}

var (
	measureRe    = regexp.MustCompile(`^\s*([0-9]+(?:[.,][0-9]+)?)\s*([a-zA-Z]*)\s*$`)
	feetInchesRe = regexp.MustCompile(`^\s*([0-9]+)\s*(?:ft|'|pes|\s)\s*(?:([0-9]+(?:[.,][0-9]+)?)\s*(?:in|"|pol)?)?\s*$`)
)

// ParseWeight reads "72.5", "72,5 kg" or "160 lb" and returns kilograms
// together with the unit the user typed. Bare numbers use defaultUnit.
func ParseWeight(raw, defaultUnit string) (float64, string, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, "", ErrRequired
	}
	match := measureRe.FindStringSubmatch(raw)
	if match == nil {
		return 0, "", fmt.Errorf("%w: weight %q", ErrInvalid, raw)
	}
	value, err := ParseDecimal(match[1])
	if err != nil {
		return 0, "", err
	}
	unit := strings.ToLower(match[2])
	if unit == "" {
		unit = defaultUnit
	}
	switch unit {
	case UnitKg, "kgs", "quilos":
		return value, UnitKg, nil
	case UnitLb, "lbs", "libras":
		return LbToKg(value), UnitLb, nil
	default:
		return 0, "", fmt.Errorf("%w: unknown weight unit %q", ErrInvalid, match[2])
	}
}

// ParseHeight reads "178", "1.78 m", "178 cm", "5'10" or "5ft 10in" and
// returns centimetres together with the unit family the user typed.
func ParseHeight(raw string) (float64, string, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, "", ErrRequired
	}
	if match := measureRe.FindStringSubmatch(raw); match != nil {
		value, err := ParseDecimal(match[1])
		if err != nil {
			return 0, "", err
		}
		switch strings.ToLower(match[2]) {
		case "", UnitCm:
			// metres typed without a unit
			if value > 0 && value < 3 {
				return value * 100, UnitCm, nil
			}
			return value, UnitCm, nil
		case "m":
			return value * 100, UnitCm, nil
		case UnitFt:
			return FeetInchesToCm(value, 0), UnitFt, nil
		case "in":
			return InchesToCm(value), UnitFt, nil
		}
	}
	if match := feetInchesRe.FindStringSubmatch(raw); match != nil {
		feet, _ := strconv.ParseFloat(match[1], 64)
		var inches float64
		if match[2] != "" {
			parsed, err := ParseDecimal(match[2])
			if err != nil {
				return 0, "", err
			}
			inches = parsed
		}
		if inches >= InchesPerFoot {
			return 0, "", fmt.Errorf("%w: inches must be below 12", ErrInvalid)
		}
		return FeetInchesToCm(feet, inches), UnitFt, nil
	}
	return 0, "", fmt.Errorf("%w: height %q", ErrInvalid, raw)
}

func formatStored(value float64) string {
	return strconv.FormatFloat(Round(value, 2), 'f', -1, 64)
}

// DisplayWeight formats kilograms in the unit the user chose.
func DisplayWeight(kg float64, unit string) string {
	if unit == UnitLb {
		return FormatDecimal(KgToLb(kg)) + " lb"
	}
	return FormatDecimal(kg) + " kg"
}

// DisplayHeight formats centimetres in the unit family the user chose.
func DisplayHeight(cm float64, unit string) string {
	if unit == UnitFt {
		feet, inches := CmToFeetInches(cm)
		return fmt.Sprintf("%d'%s\"", feet, FormatDecimal(inches))
	}
	return FormatDecimal(cm) + " cm"
}
