package services

import "testing"

func TestPresetStoreKeys(t *testing.T) {
	store := NewPresetStore()

	cities := store.Cities()
	if len(cities) != 3 {
		t.Fatalf("store has %d cities, want 3", len(cities))
	}

	for _, key := range []string{"mumbai", "delhi", "bangalore"} {
		if _, ok := store.Lookup(key); !ok {
			t.Errorf("Lookup(%q) missed", key)
		}
	}
	if _, ok := store.Lookup("Mumbai"); ok {
		t.Error("store keys must be normalized; cased lookup should miss")
	}
	if _, ok := store.Lookup("atlantis"); ok {
		t.Error("unexpected preset for unknown city")
	}
}

func TestPresetContentValid(t *testing.T) {
	store := NewPresetStore()
	validTimes := map[TimeOfDay]bool{Morning: true, Afternoon: true, Evening: true}

	for _, key := range store.Cities() {
		preset, _ := store.Lookup(key)
		if preset.Summary == "" {
			t.Errorf("%s: empty summary", key)
		}
		if len(preset.Recommendations) == 0 {
			t.Errorf("%s: no recommendations", key)
		}
		if len(preset.Days) == 0 {
			t.Fatalf("%s: no days", key)
		}
		for i, day := range preset.Days {
			if day.Summary == "" {
				t.Errorf("%s day %d: empty summary", key, i+1)
			}
			if len(day.Activities) == 0 {
				t.Errorf("%s day %d: no activities", key, i+1)
			}
			for _, a := range day.Activities {
				if !validTimes[a.Time] {
					t.Errorf("%s day %d: invalid time of day %q", key, i+1, a.Time)
				}
				if a.Place == "" || a.Category == "" {
					t.Errorf("%s day %d: activity missing place or category", key, i+1)
				}
				if a.Cost < 0 || a.DurationMinutes <= 0 {
					t.Errorf("%s day %d: activity %q invalid cost/duration", key, i+1, a.Place)
				}
			}
			if len(day.Dining) == 0 {
				t.Errorf("%s day %d: no dining", key, i+1)
			}
			for _, d := range day.Dining {
				if d.Name == "" || d.Cuisine == "" {
					t.Errorf("%s day %d: dining missing name or cuisine", key, i+1)
				}
				if d.PricePerPerson < 0 {
					t.Errorf("%s day %d: dining %q negative price", key, i+1, d.Name)
				}
			}
		}
	}
}
