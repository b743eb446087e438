package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/medialoc/crm-go/dto"
	"github.com/medialoc/crm-go/formclient"
)

func TestFlexibleIDUnmarshal(t *testing.T) {
	var payload dto.DeliveryStatusDTO

	// Ids arrive as strings from form clients and as numbers from
	// API-native callers; both must land on the same uint.
	if err := json.Unmarshal([]byte(`{"crm_project_id":"10"}`), &payload); err != nil {
		t.Fatalf("string id rejected: %v", err)
	}
	if payload.CRMProjectID != 10 {
		t.Fatalf("string id mangled: %d", payload.CRMProjectID)
	}

	if err := json.Unmarshal([]byte(`{"crm_project_id":42}`), &payload); err != nil {
		t.Fatalf("numeric id rejected: %v", err)
	}
	if payload.CRMProjectID != 42 {
		t.Fatalf("numeric id mangled: %d", payload.CRMProjectID)
	}

	if err := json.Unmarshal([]byte(`{"crm_project_id":"ten"}`), &payload); err == nil {
		t.Fatal("non-numeric id accepted")
	}
}

// The write endpoints must decode exactly what the form client submits:
// ids as strings, unknown tri-states as null, other-variant keys absent.
func TestDecodesFormClientPayload(t *testing.T) {
	files := 3
	state := formclient.NewFormState()
	state.CRMProjectID = "10"
	state.ProjectType = "QVO"
	state.ServiceType = "Dub"
	state.NumberOfFiles = &files
	state.VoiceMatchNeeded = formclient.DisplayYes
	state.LipMatchNeeded = formclient.DisplayNo

	pruned := formclient.PruneForVariant(formclient.BuildPayload(state), "QVO")
	body, err := json.Marshal(pruned)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var payload dto.DeliveryStatusDTO
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("server cannot decode client payload: %v", err)
	}

	if payload.CRMProjectID != 10 {
		t.Fatalf("crm_project_id mangled: %d", payload.CRMProjectID)
	}
	if payload.ProjectType != "QVO" || payload.ServiceType != "Dub" {
		t.Fatalf("common fields mangled: %+v", payload)
	}
	if payload.NumberOfFiles == nil || *payload.NumberOfFiles != 3 {
		t.Fatalf("number_of_files mangled: %v", payload.NumberOfFiles)
	}
	if payload.VoiceMatchNeeded == nil || !*payload.VoiceMatchNeeded {
		t.Fatalf("voice_match_needed mangled: %v", payload.VoiceMatchNeeded)
	}
	if payload.LipMatchNeeded == nil || *payload.LipMatchNeeded {
		t.Fatalf("lip_match_needed mangled: %v", payload.LipMatchNeeded)
	}

	// Untouched tri-states serialize as null and stay unknown.
	if payload.SoundBalancingNeeded != nil {
		t.Fatalf("unknown tri-state not null: %v", payload.SoundBalancingNeeded)
	}
	// DT-only keys were pruned and must not come back populated.
	if payload.HasDTFields() {
		t.Fatalf("other-variant fields leaked through: %+v", payload)
	}
}
