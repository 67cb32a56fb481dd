package onboarding

import (
	"errors"
	"testing"
)

func completedStore(t *testing.T, inputs ...string) Store {
	t.Helper()
	store := NewMemoryStore()
	answerAll(t, NewWizard(store, DefaultScreens()), inputs...)
	return store
}

func TestSummarizeMale(t *testing.T) {
	store := completedStore(t, "masculino", "30", "80", "178", "perder", "3-4", "auto", "38", "85")

	profile, err := LoadProfile(store)
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	if profile.HipCm != nil {
		t.Fatal("expected no hip for a male profile")
	}

	summary, err := profile.Summarize()
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	near(t, "bmi", summary.BMI, 25.2, 1e-9)
	if summary.BMICategory != "Sobrepeso" {
		t.Errorf("category = %q", summary.BMICategory)
	}
	near(t, "bmr", summary.BMR, 1768, 1e-9)
	near(t, "tdee", summary.TDEE, 2740, 1e-9)
	near(t, "target", summary.TargetCalories, 2240, 1e-9)
	near(t, "water", summary.WaterLiters, 2.8, 1e-9)
	if summary.BodyFatPct == nil {
		t.Fatal("expected body fat estimate")
	}
	near(t, "body fat", *summary.BodyFatPct, 16.4, 1e-9)
}

func TestSummarizeWithoutCircumferences(t *testing.T) {
	store := completedStore(t, "feminino", "28", "60", "165", "ganhar", "0", "2.5", "", "", "")

	profile, err := LoadProfile(store)
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	summary, err := profile.Summarize()
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if summary.BodyFatPct != nil {
		t.Fatalf("expected no body fat estimate, got %v", *summary.BodyFatPct)
	}
	near(t, "water", summary.WaterLiters, 2.5, 1e-9)
	// 10*60 + 6.25*165 - 5*28 - 161 = 1330.25, sedentary
	near(t, "target", summary.TargetCalories, Round(1330.25*1.2+300, 0), 1e-9)
}

func TestLoadProfileMissingAnswer(t *testing.T) {
	store := NewMemoryStore()
	_ = store.Set(KeySex, SexMale)
	_ = store.Set(KeyAge, "30")

	_, err := LoadProfile(store)
	if !errors.Is(err, ErrRequired) {
		t.Fatalf("expected ErrRequired, got %v", err)
	}
}

func TestLoadProfileCorruptValue(t *testing.T) {
	store := completedStore(t, "masculino", "30", "80", "178", "perder", "3-4", "auto", "", "")
	_ = store.Set(KeyWeight, "oitenta")

	if _, err := LoadProfile(store); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestSummarizeDropsImplausibleBodyFat(t *testing.T) {
	store := completedStore(t, "masculino", "30", "80", "180", "manter", "3-4", "auto", "", "")
	// written by hand, bypassing the waist screen check
	_ = store.Set(KeyNeck, "50")
	_ = store.Set(KeyWaist, "45")

	profile, err := LoadProfile(store)
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	summary, err := profile.Summarize()
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if summary.BodyFatPct != nil {
		t.Fatalf("expected body fat to be left out, got %v", *summary.BodyFatPct)
	}
	if summary.BMI == 0 || summary.TDEE == 0 || summary.WaterLiters == 0 {
		t.Fatalf("expected the remaining metrics, got %+v", summary)
	}
}
