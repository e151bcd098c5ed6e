package garden

import (
	"errors"
	"strings"
	"testing"
)

func TestNewResolver(t *testing.T) {
	r := NewResolver()
	if r == nil {
		t.Fatal("NewResolver returned nil")
	}
}

func TestResolver_ResolveSeason_Aliases(t *testing.T) {
	r := NewResolver()

	// Every alias in the table resolves to its mapped canonical key.
	for alias, want := range SeasonAliases {
		got, err := r.ResolveSeason(alias)
		if err != nil {
			t.Errorf("ResolveSeason(%q) returned unexpected error: %v", alias, err)
			continue
		}

		if got != want {
			t.Errorf("ResolveSeason(%q) = %q, want %q", alias, got, want)
		}
	}
}

func TestResolver_ResolvePlant_Aliases(t *testing.T) {
	r := NewResolver()

	for alias, want := range PlantAliases {
		got, err := r.ResolvePlant(alias)
		if err != nil {
			t.Errorf("ResolvePlant(%q) returned unexpected error: %v", alias, err)
			continue
		}

		if got != want {
			t.Errorf("ResolvePlant(%q) = %q, want %q", alias, got, want)
		}
	}
}

func TestResolver_ResolveSeason_FallVariants(t *testing.T) {
	r := NewResolver()

	for _, raw := range []string{"Fall", "FALL", " fall "} {
		got, err := r.ResolveSeason(raw)
		if err != nil {
			t.Errorf("ResolveSeason(%q) returned unexpected error: %v", raw, err)
			continue
		}

		if got != SeasonAutumn {
			t.Errorf("ResolveSeason(%q) = %q, want %q", raw, got, SeasonAutumn)
		}
	}
}

func TestResolver_ResolveSeason_Unknown(t *testing.T) {
	r := NewResolver()

	_, err := r.ResolveSeason("monsoon")
	if err == nil {
		t.Fatal("ResolveSeason(\"monsoon\") returned no error")
	}

	if !errors.Is(err, ErrUnknownSeason) {
		t.Errorf("error = %v, want ErrUnknownSeason", err)
	}

	if !strings.Contains(err.Error(), "monsoon") {
		t.Errorf("error %q does not mention the offending text", err)
	}

	if !strings.Contains(err.Error(), "spring") {
		t.Errorf("error %q does not mention the accepted vocabulary", err)
	}
}

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver()

	str := func(s string) *string { return &s }

	tests := []struct {
		name       string
		rawSeason  *string
		rawPlant   *string
		wantSeason string
		wantPlant  string
		wantErrs   []string
	}{
		{
			name:       "Both valid",
			rawSeason:  str("Summer"),
			rawPlant:   str("Vegetables"),
			wantSeason: SeasonSummer,
			wantPlant:  PlantVegetable,
		},
		{
			name:       "Fall maps to autumn",
			rawSeason:  str(" fall "),
			rawPlant:   str("flower"),
			wantSeason: SeasonAutumn,
			wantPlant:  PlantFlower,
		},
		{
			name:      "Unknown season only",
			rawSeason: str("monsoon"),
			rawPlant:  str("veg"),
			wantPlant: PlantVegetable,
			wantErrs:  []string{"monsoon"},
		},
		{
			name:       "Unknown plant only",
			rawSeason:  str("winter"),
			rawPlant:   str("cactus"),
			wantSeason: SeasonWinter,
			wantErrs:   []string{"cactus"},
		},
		{
			name:      "Both unknown reports season then plant",
			rawSeason: str("monsoon"),
			rawPlant:  str("cactus"),
			wantErrs:  []string{"monsoon", "cactus"},
		},
		{
			name:      "Absent season is skipped",
			rawPlant:  str("flowers"),
			wantPlant: PlantFlower,
		},
		{
			name:       "Absent plant is skipped",
			rawSeason:  str("spring"),
			wantSeason: SeasonSpring,
		},
		{
			name: "Both absent yields nothing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := r.Resolve(tt.rawSeason, tt.rawPlant)

			if result.Season != tt.wantSeason {
				t.Errorf("Season = %q, want %q", result.Season, tt.wantSeason)
			}

			if result.Plant != tt.wantPlant {
				t.Errorf("Plant = %q, want %q", result.Plant, tt.wantPlant)
			}

			if len(result.Errors) != len(tt.wantErrs) {
				t.Fatalf("got %d errors (%v), want %d", len(result.Errors), result.Errors, len(tt.wantErrs))
			}

			for i, want := range tt.wantErrs {
				if !strings.Contains(result.Errors[i].Error(), want) {
					t.Errorf("error[%d] = %q, want it to mention %q", i, result.Errors[i], want)
				}
			}
		})
	}
}

func TestResolver_Resolve_ErrorOrder(t *testing.T) {
	r := NewResolver()

	season := "monsoon"
	plant := "cactus"

	result := r.Resolve(&season, &plant)
	if len(result.Errors) != 2 {
		t.Fatalf("Expected 2 errors, got %d", len(result.Errors))
	}

	if !errors.Is(result.Errors[0], ErrUnknownSeason) {
		t.Errorf("First error = %v, want ErrUnknownSeason", result.Errors[0])
	}

	if !errors.Is(result.Errors[1], ErrUnknownPlant) {
		t.Errorf("Second error = %v, want ErrUnknownPlant", result.Errors[1])
	}
}
