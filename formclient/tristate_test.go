package formclient

import "testing"

func TestToDisplayMapping(t *testing.T) {
	yes := true
	no := false

	cases := []struct {
		name   string
		stored *bool
		want   string
	}{
		{"true", &yes, DisplayYes},
		{"false", &no, DisplayNo},
		{"nil", nil, DisplayNA},
	}
	for _, tc := range cases {
		if got := ToDisplay(tc.stored); got != tc.want {
			t.Fatalf("ToDisplay(%s) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestToStoredMapping(t *testing.T) {
	if v := ToStored(DisplayYes); v == nil || !*v {
		t.Fatalf("ToStored(Yes) = %v, want true", v)
	}
	if v := ToStored(DisplayNo); v == nil || *v {
		t.Fatalf("ToStored(No) = %v, want false", v)
	}
	for _, s := range []string{DisplayNA, "", "maybe", "yes"} {
		if v := ToStored(s); v != nil {
			t.Fatalf("ToStored(%q) = %v, want nil", s, v)
		}
	}
}

func TestTriStateRoundTrip(t *testing.T) {
	// Display -> stored -> display is identity for the canonical tokens.
	for _, token := range []string{DisplayYes, DisplayNo, DisplayNA} {
		if got := ToDisplay(ToStored(token)); got != token {
			t.Fatalf("round trip of %q gave %q", token, got)
		}
	}

	// Stored -> display -> stored is identity for both booleans.
	for _, v := range []bool{true, false} {
		v := v
		back := ToStored(ToDisplay(&v))
		if back == nil || *back != v {
			t.Fatalf("round trip of %v gave %v", v, back)
		}
	}
}

func TestToStoredIdempotentThroughStored(t *testing.T) {
	for _, token := range []string{DisplayYes, DisplayNo, DisplayNA, "garbage"} {
		once := ToStored(token)
		twice := ToStored(ToDisplay(once))
		if (once == nil) != (twice == nil) {
			t.Fatalf("idempotence broken for %q: %v vs %v", token, once, twice)
		}
		if once != nil && *once != *twice {
			t.Fatalf("idempotence broken for %q: %v vs %v", token, *once, *twice)
		}
	}
}

func TestPruneForVariant(t *testing.T) {
	payload := map[string]any{
		"crm_project_id":     "10",
		"project_type":       "QVO",
		"service_type":       "Dub",
		"number_of_files":    3,
		"voice_match_needed": true,
		"source_word_count":  500,
	}

	qvo := PruneForVariant(payload, "QVO")
	if _, ok := qvo["source_word_count"]; ok {
		t.Fatalf("QVO payload still carries source_word_count")
	}
	if qvo["voice_match_needed"] != true {
		t.Fatalf("QVO payload lost voice_match_needed")
	}
	for _, k := range []string{"crm_project_id", "project_type", "service_type", "number_of_files"} {
		if _, ok := qvo[k]; !ok {
			t.Fatalf("common key %q pruned", k)
		}
	}
	if qvo["crm_project_id"] != "10" {
		t.Fatalf("crm_project_id changed: %v", qvo["crm_project_id"])
	}

	dt := PruneForVariant(payload, "DT")
	for _, k := range qvoOnlyKeys {
		if _, ok := dt[k]; ok {
			t.Fatalf("DT payload still carries QVO key %q", k)
		}
	}
	if _, ok := dt["source_word_count"]; !ok {
		t.Fatalf("DT payload lost source_word_count")
	}

	// The input map is untouched.
	if _, ok := payload["source_word_count"]; !ok {
		t.Fatalf("PruneForVariant mutated its input")
	}
}

func TestPruneForVariantUnknownTypeDropsBoth(t *testing.T) {
	payload := map[string]any{
		"service_type":       "Dub",
		"voice_match_needed": true,
		"source_word_count":  500,
	}
	pruned := PruneForVariant(payload, "")
	if len(pruned) != 1 {
		t.Fatalf("want only common keys, got %v", pruned)
	}
}
