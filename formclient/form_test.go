package formclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

func TestValidateCollectsAllViolations(t *testing.T) {
	err := Validate(NewFormState())
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if len(ve.Violations) != 3 {
		t.Fatalf("want 3 violations, got %v", ve.Violations)
	}
}

func TestValidateRejectsBlankServiceType(t *testing.T) {
	state := NewFormState()
	state.CRMProjectID = "42"
	state.ProjectType = "QVO"
	state.ServiceType = "   "

	var ve *ValidationError
	if !errors.As(Validate(state), &ve) {
		t.Fatalf("blank service_type accepted")
	}
}

func TestValidateAcceptsMinimalState(t *testing.T) {
	state := NewFormState()
	state.CRMProjectID = "42"
	state.ProjectType = "QVO"
	state.ServiceType = "AI Dub"

	if err := Validate(state); err != nil {
		t.Fatalf("minimal state rejected: %v", err)
	}
}

func TestFetchProjectsShortCircuitsOnEmptyIDs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("unexpected request %s", r.URL)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, Session{Token: "tok"})
	projects, err := client.FetchProjects(context.Background())
	if err != nil {
		t.Fatalf("FetchProjects failed: %v", err)
	}
	if len(projects) != 0 {
		t.Fatalf("want empty result, got %v", projects)
	}
}

func TestClientRequiresCredential(t *testing.T) {
	client := NewClient("http://localhost:0", Session{ProjectIDs: []uint{1}})

	_, err := client.FetchProjects(context.Background())
	var nae *NotAuthenticatedError
	if !errors.As(err, &nae) {
		t.Fatalf("want NotAuthenticatedError, got %v", err)
	}
}

func TestSubmitCreateQVOPrunesStrayFields(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/delivery-status" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer tok" {
			t.Fatalf("missing credential header")
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"id": 1, "project_type": "QVO"})
	}))
	defer srv.Close()

	form := NewForm(NewClient(srv.URL, Session{Token: "tok"}))
	if err := form.Load(context.Background(), ModeCreate, 0); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	files := 3
	words := 500
	form.State.CRMProjectID = "10"
	form.State.ProjectType = "QVO"
	form.State.ServiceType = "Dub"
	form.State.NumberOfFiles = &files
	form.State.VoiceMatchNeeded = DisplayYes
	form.State.SourceWordCount = &words // stray field for this variant

	if _, err := form.Submit(context.Background()); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if form.Phase() != PhaseSucceeded {
		t.Fatalf("want Succeeded, got %s", form.Phase())
	}

	if body["voice_match_needed"] != true {
		t.Fatalf("voice_match_needed = %v, want true", body["voice_match_needed"])
	}
	if _, ok := body["source_word_count"]; ok {
		t.Fatalf("stray source_word_count survived pruning")
	}
	if body["crm_project_id"] != "10" {
		t.Fatalf("crm_project_id = %v, want \"10\"", body["crm_project_id"])
	}
}

func TestEditLoadTranslatesStoredRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/projects":
			json.NewEncoder(w).Encode([]ProjectRef{{ID: 10, ProjectName: "Atlas"}})
		case "/api/delivery-status/my":
			formatting := true
			deadline := "2024-05-01T00:00:00Z"
			json.NewEncoder(w).Encode([]Record{{
				ID:                 5,
				CRMProjectID:       10,
				ProjectType:        "DT",
				ServiceType:        "Subtitles",
				Deadline:           &deadline,
				FormattingRequired: &formatting,
			}})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	form := NewForm(NewClient(srv.URL, Session{Token: "tok", ProjectIDs: []uint{10}}))
	if err := form.Load(context.Background(), ModeEdit, 5); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if form.Phase() != PhaseReady {
		t.Fatalf("want Ready, got %s", form.Phase())
	}
	if form.State.FormattingRequired != DisplayYes {
		t.Fatalf("formatting_required = %q, want Yes", form.State.FormattingRequired)
	}
	if form.State.Deadline != "2024-05-01" {
		t.Fatalf("deadline = %q, want 2024-05-01", form.State.Deadline)
	}
	if len(form.Projects) != 1 || form.Projects[0].ProjectName != "Atlas" {
		t.Fatalf("reference projects not loaded: %v", form.Projects)
	}
}

func TestEditLoadNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]Record{})
	}))
	defer srv.Close()

	form := NewForm(NewClient(srv.URL, Session{Token: "tok", ProjectIDs: []uint{10}}))
	err := form.Load(context.Background(), ModeEdit, 99)

	var nfe *NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("want NotFoundError, got %v", err)
	}
	if form.Phase() != PhaseLoadFailed {
		t.Fatalf("want LoadFailed, got %s", form.Phase())
	}
}

func TestSubmitFailureCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "duplicate project"})
	}))
	defer srv.Close()

	form := NewForm(NewClient(srv.URL, Session{Token: "tok"}))
	if err := form.Load(context.Background(), ModeCreate, 0); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	form.State.CRMProjectID = "10"
	form.State.ProjectType = "QVO"
	form.State.ServiceType = "Dub"

	_, err := form.Submit(context.Background())
	var apiErr *ApiError
	if !errors.As(err, &apiErr) {
		t.Fatalf("want ApiError, got %v", err)
	}
	if apiErr.Message != "duplicate project" {
		t.Fatalf("message = %q, want server message verbatim", apiErr.Message)
	}
	if form.Phase() != PhaseReady {
		t.Fatalf("form should return to Ready, got %s", form.Phase())
	}
	if form.LastError() == nil {
		t.Fatalf("failure not recorded")
	}
}

func TestSubmitValidationFailureSkipsNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("unexpected request %s", r.URL)
	}))
	defer srv.Close()

	form := NewForm(NewClient(srv.URL, Session{Token: "tok"}))
	if err := form.Load(context.Background(), ModeCreate, 0); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	_, err := form.Submit(context.Background())
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("want ValidationError, got %v", err)
	}
}

func TestSubmitDoubleEntryGuard(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"id": 1})
	}))
	defer srv.Close()

	form := NewForm(NewClient(srv.URL, Session{Token: "tok"}))
	if err := form.Load(context.Background(), ModeCreate, 0); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	form.State.CRMProjectID = "10"
	form.State.ProjectType = "QVO"
	form.State.ServiceType = "Dub"

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		_, firstErr = form.Submit(context.Background())
	}()

	// Wait for the first submit to be in flight, then try again.
	for form.Phase() != PhaseSubmitting {
		time.Sleep(time.Millisecond)
	}
	if _, err := form.Submit(context.Background()); !errors.Is(err, ErrSubmitInFlight) {
		t.Fatalf("want ErrSubmitInFlight, got %v", err)
	}

	close(release)
	wg.Wait()
	if firstErr != nil {
		t.Fatalf("first submit failed: %v", firstErr)
	}
}

func TestSubmitNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	form := NewForm(NewClient(srv.URL, Session{Token: "tok"}))
	form.State.CRMProjectID = "10"
	form.State.ProjectType = "DT"
	form.State.ServiceType = "Translation"
	form.mode = ModeCreate
	form.phase = PhaseReady

	_, err := form.Submit(context.Background())
	var ne *NetworkError
	if !errors.As(err, &ne) {
		t.Fatalf("want NetworkError, got %v", err)
	}
}
