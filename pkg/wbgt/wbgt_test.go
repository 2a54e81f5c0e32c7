package wbgt

import (
	"math"
	"testing"

	"github.com/chrissnell/wbgt/pkg/solarpos"
)

// summerNoon is a hot clear midday in Oklahoma with the anemometer at
// the 2 m reference height.
func summerNoon() Input {
	return Input{
		Year: 2005, Month: 6, Day: 21,
		Hour: 12, Minute: 0, Second: 0,
		GMTOffset: -6, AvgPeriod: 1,
		Latitude: 35.0, Longitude: -98.0,
		Solar: 800.0, Pressure: 1013.0,
		AirTemp: 33.0, RelHum: 50.0,
		WindSpeed: 2.0, WindHeight: 2.0,
	}
}

func TestCalculateSummerNoon(t *testing.T) {
	res, err := Calculate(summerNoon())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Converged {
		t.Fatal("expected convergence")
	}

	// Radiative heating dominates the globe; evaporation cools the wick
	if res.GlobeTemp <= 33.0 {
		t.Errorf("Tg = %v, expected above the 33.0 air temperature", res.GlobeTemp)
	}
	if res.NaturalWetBulb >= 33.0 {
		t.Errorf("Tnwb = %v, expected below the 33.0 air temperature", res.NaturalWetBulb)
	}
	if res.WBGT <= res.NaturalWetBulb || res.WBGT >= res.GlobeTemp {
		t.Errorf("WBGT = %v, expected strictly between Tnwb %v and Tg %v",
			res.WBGT, res.NaturalWetBulb, res.GlobeTemp)
	}

	// Wind already at reference height: floored, not extrapolated
	if res.EstimatedSpeed != 2.0 {
		t.Errorf("EstimatedSpeed = %v, want measured 2.0", res.EstimatedSpeed)
	}

	// Near local solar noon at the solstice: 800 W/m² is within the
	// top-of-atmosphere bound and passes through unchanged
	if math.Abs(res.AdjustedSolar-800.0) > 1e-9 {
		t.Errorf("AdjustedSolar = %v, want 800", res.AdjustedSolar)
	}

	want := 0.1*33.0 + 0.2*res.GlobeTemp + 0.7*res.NaturalWetBulb
	if math.Abs(res.WBGT-want) > 1e-9 {
		t.Errorf("WBGT = %v, want weighted sum %v", res.WBGT, want)
	}
}

func TestCalculateWindExtrapolation(t *testing.T) {
	in := summerNoon()
	in.WindSpeed = 5.0
	in.WindHeight = 10.0

	res, err := Calculate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Daytime, 800 W/m², 5 m/s: stability class 3, rural exponent 0.10
	want := 5.0 * math.Pow(2.0/10.0, 0.10)
	if math.Abs(res.EstimatedSpeed-want) > 1e-6 {
		t.Errorf("EstimatedSpeed = %v, want %v", res.EstimatedSpeed, want)
	}
}

func TestCalculateWindFloor(t *testing.T) {
	in := summerNoon()
	in.WindSpeed = 0.01

	res, err := Calculate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.EstimatedSpeed != MinWindSpeed {
		t.Errorf("EstimatedSpeed = %v, want hard floor %v", res.EstimatedSpeed, MinWindSpeed)
	}

	in.MinWindSpeed = 0.5
	res, err = Calculate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.EstimatedSpeed != 0.5 {
		t.Errorf("EstimatedSpeed = %v, want configured floor 0.5", res.EstimatedSpeed)
	}
}

func TestCalculateNight(t *testing.T) {
	in := summerNoon()
	in.Hour = 0
	in.WindSpeed = 5.0
	in.WindHeight = 10.0
	in.DeltaT = -1.0
	in.Solar = 0.0

	res, err := Calculate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Converged {
		t.Fatal("expected convergence at night")
	}
	if res.AdjustedSolar != 0.0 {
		t.Errorf("AdjustedSolar = %v, want 0 with the sun below the horizon", res.AdjustedSolar)
	}
	// Without solar loading the globe cannot read above the air temperature
	if res.GlobeTemp > 33.0 {
		t.Errorf("night Tg = %v, expected at or below air temperature", res.GlobeTemp)
	}
}

func TestCalculateDeterministic(t *testing.T) {
	a, err := Calculate(summerNoon())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Calculate(summerNoon())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Errorf("identical inputs produced different results: %+v vs %+v", a, b)
	}
}

func TestCalculateDomainErrors(t *testing.T) {
	in := summerNoon()
	in.Latitude = 91.0
	if _, err := Calculate(in); err == nil {
		t.Error("latitude 91 should fail")
	}

	in = summerNoon()
	in.Longitude = 181.0
	if _, err := Calculate(in); err == nil {
		t.Error("longitude 181 should fail")
	}

	in = summerNoon()
	in.Year = 1900
	if _, err := Calculate(in); err == nil {
		t.Error("year 1900 should fail")
	}
}

func TestCalculateWithMeeusPositioner(t *testing.T) {
	in := summerNoon()
	in.Positioner = solarpos.Meeus{}

	hp, err := Calculate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lp, err := Calculate(summerNoon())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !hp.Converged || !lp.Converged {
		t.Fatal("expected both models to converge")
	}
	// The two position models agree closely at midday, so the WBGT
	// should differ only marginally.
	if math.Abs(hp.WBGT-lp.WBGT) > 0.5 {
		t.Errorf("WBGT almanac=%v meeus=%v, expected close agreement", lp.WBGT, hp.WBGT)
	}
}
