package fragility_test

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cirruscomms/fragility"
)

var wantLevels = []fragility.Level{
	"Very sustainable",
	"Sustainable",
	"More stable",
	"Stable",
	"Less stable",
	"Warning",
	"Elevated warning",
	"High warning",
	"Alert",
	"High alert",
	"Very high alert",
}

var wantRange = []fragility.Color{
	"#1a1a1a",
	"#4d4d4d",
	"#878787",
	"#bababa",
	"#e0e0e0",
	"#ffffff",
	"#fddbc7",
	"#f4a582",
	"#d6604d",
	"#b2182b",
	"#67001f",
}

func TestScaleColor(t *testing.T) {
	testCases := map[string]struct {
		level fragility.Level
		want  fragility.Color
	}{
		"most sustainable endpoint": {level: fragility.LevelVerySustainable, want: "#1a1a1a"},
		"most severe endpoint":      {level: fragility.LevelVeryHighAlert, want: "#67001f"},
		"stable":                    {level: fragility.LevelStable, want: "#bababa"},
		"white band on warning":     {level: fragility.LevelWarning, want: "#ffffff"},
		"elevated warning":          {level: fragility.LevelElevatedWarning, want: "#fddbc7"},
		"alert":                     {level: fragility.LevelAlert, want: "#d6604d"},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got, err := fragility.ScaleColor(tc.level)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tc.want {
				t.Errorf("expected %s for %q, got %s", tc.want, tc.level, got)
			}
		})
	}
}

func TestScaleColorUnknownLevel(t *testing.T) {
	for _, level := range []fragility.Level{"Nonexistent", "", "stable", "Very High Alert", "Stable "} {
		t.Run(string(level), func(t *testing.T) {
			got, err := fragility.ScaleColor(level)
			if !errors.Is(err, fragility.ErrUnknownLevel) {
				t.Fatalf("expected ErrUnknownLevel, got %v", err)
			}

			if got != "" {
				t.Errorf("expected no colour for unknown level, got %s", got)
			}
		})
	}
}

func TestScaleBijection(t *testing.T) {
	seen := map[fragility.Color]fragility.Level{}

	for _, level := range fragility.Levels() {
		c, err := fragility.ScaleColor(level)
		if err != nil {
			t.Fatalf("level %q: %v", level, err)
		}

		if other, dup := seen[c]; dup {
			t.Errorf("levels %q and %q share colour %s", other, level, c)
		}

		seen[c] = level
	}

	if len(seen) != 11 {
		t.Errorf("expected 11 distinct colours, got %d", len(seen))
	}
}

func TestScaleAlignment(t *testing.T) {
	s := fragility.DefaultScale()

	if diff := cmp.Diff(wantLevels, s.Domain()); diff != "" {
		t.Errorf("domain mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(wantRange, s.Range()); diff != "" {
		t.Errorf("range mismatch (-want +got):\n%s", diff)
	}

	domain, rng := s.Domain(), s.Range()
	for i := range domain {
		c, err := s.ColorOf(domain[i])
		if err != nil {
			t.Fatalf("level %q: %v", domain[i], err)
		}

		if c != rng[i] {
			t.Errorf("index %d: ColorOf(%q) = %s, Range()[%d] = %s", i, domain[i], c, i, rng[i])
		}
	}

	if s.Len() != 11 {
		t.Errorf("expected 11 bindings, got %d", s.Len())
	}
}

func TestScaleRepeatedReads(t *testing.T) {
	s := fragility.DefaultScale()
	first, firstRange := s.Domain(), s.Range()

	for range 5 {
		if diff := cmp.Diff(first, s.Domain()); diff != "" {
			t.Fatalf("domain changed between reads (-first +now):\n%s", diff)
		}

		if diff := cmp.Diff(firstRange, s.Range()); diff != "" {
			t.Fatalf("range changed between reads (-first +now):\n%s", diff)
		}
	}

	if fragility.DefaultScale() != s {
		t.Error("expected the same default scale on every call")
	}
}

func TestScaleCopiesAreDetached(t *testing.T) {
	s := fragility.DefaultScale()

	domain := s.Domain()
	rng := s.Range()
	domain[0], domain[10] = domain[10], domain[0]
	rng[0] = "#000000"

	raw := fragility.Colors()
	slices.Reverse(raw)

	got, err := s.ColorOf(fragility.LevelVerySustainable)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got != "#1a1a1a" {
		t.Errorf("scale was affected by caller mutation, got %s", got)
	}

	if diff := cmp.Diff(wantLevels, s.Domain()); diff != "" {
		t.Errorf("domain was affected by caller mutation (-want +got):\n%s", diff)
	}

	if c := fragility.Colors()[0]; c != "#67001f" {
		t.Errorf("raw palette was affected by caller mutation, first entry %s", c)
	}
}

func TestScaleLevelOf(t *testing.T) {
	s := fragility.DefaultScale()

	for _, b := range s.Bindings() {
		got, err := s.LevelOf(b.Color)
		if err != nil {
			t.Fatalf("colour %s: %v", b.Color, err)
		}

		if got != b.Level {
			t.Errorf("LevelOf(%s) = %q, expected %q", b.Color, got, b.Level)
		}
	}

	if _, err := s.LevelOf("#123456"); !errors.Is(err, fragility.ErrUnknownColor) {
		t.Errorf("expected ErrUnknownColor, got %v", err)
	}
}

func TestNewOrdinal(t *testing.T) {
	testCases := map[string]struct {
		domain  []fragility.Level
		rng     []fragility.Color
		wantErr error
	}{
		"valid": {
			domain: []fragility.Level{fragility.LevelStable, fragility.LevelAlert},
			rng:    []fragility.Color{"#ffffff", "#d6604d"},
		},
		"empty": {},
		"length mismatch": {
			domain:  []fragility.Level{fragility.LevelStable, fragility.LevelAlert},
			rng:     []fragility.Color{"#ffffff"},
			wantErr: fragility.ErrScaleMismatch,
		},
		"duplicate level": {
			domain:  []fragility.Level{fragility.LevelStable, fragility.LevelStable},
			rng:     []fragility.Color{"#ffffff", "#d6604d"},
			wantErr: fragility.ErrDuplicateLevel,
		},
		"duplicate colour": {
			domain:  []fragility.Level{fragility.LevelStable, fragility.LevelAlert},
			rng:     []fragility.Color{"#ffffff", "#ffffff"},
			wantErr: fragility.ErrDuplicateColor,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			s, err := fragility.NewOrdinal(tc.domain, tc.rng)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if s.Len() != len(tc.domain) {
				t.Errorf("expected %d bindings, got %d", len(tc.domain), s.Len())
			}
		})
	}
}

func TestNewOrdinalCopiesInputs(t *testing.T) {
	domain := []fragility.Level{fragility.LevelStable, fragility.LevelAlert}
	rng := []fragility.Color{"#ffffff", "#d6604d"}

	s, err := fragility.NewOrdinal(domain, rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// reordering the inputs after construction must not desynchronise the bindings
	domain[0], domain[1] = domain[1], domain[0]
	rng[0] = "#000000"

	got, err := s.ColorOf(fragility.LevelStable)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got != "#ffffff" {
		t.Errorf("expected #ffffff, got %s", got)
	}
}

func TestScaleConcurrentReads(t *testing.T) {
	var wg sync.WaitGroup

	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i, level := range fragility.Levels() {
				c, err := fragility.ScaleColor(level)
				if err != nil || c != wantRange[i] {
					t.Errorf("concurrent lookup of %q: got %s, %v", level, c, err)
				}
			}
		}()
	}

	wg.Wait()
}
