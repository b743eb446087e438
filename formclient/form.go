package formclient

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
)

type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Phase is the lifecycle of one form instance. Succeeded is terminal;
// Failed returns to Ready so the user can correct input and resubmit.
type Phase string

const (
	PhaseLoading    Phase = "loading"
	PhaseReady      Phase = "ready"
	PhaseSubmitting Phase = "submitting"
	PhaseSucceeded  Phase = "succeeded"
	PhaseFailed     Phase = "failed"
	PhaseLoadFailed Phase = "load_failed"
)

var ErrSubmitInFlight = errors.New("submit already in progress")

// FormState holds the editable fields as the form presents them.
// Tri-state booleans are display tokens, numbers are pointers so an
// untouched field stays distinguishable from zero.
type FormState struct {
	CRMProjectID string
	ProjectType  string
	ServiceType  string

	NumberOfFiles            *int
	Deadline                 string
	OutputFormat             string
	OpenProjectFilesProvided string

	TotalDurationMinutes    *int
	LanguagePair            string
	TargetLanguageDialect   string
	VoiceMatchNeeded        string
	LipMatchNeeded          string
	SoundBalancingNeeded    string
	PremixFilesShared       string
	MEFilesShared           string
	HighResVideoShared      string
	CaptionType             string
	OnScreenEditingRequired string
	Deliverable             string
	VoiceOverGender         string

	SourceWordCount    *int
	SourceLanguages    string
	TargetLanguages    string
	FormattingRequired string
}

// NewFormState returns the create-mode defaults: empty discriminator,
// every tri-state at N/A, everything else empty.
func NewFormState() FormState {
	return FormState{
		OpenProjectFilesProvided: DisplayNA,
		VoiceMatchNeeded:         DisplayNA,
		LipMatchNeeded:           DisplayNA,
		SoundBalancingNeeded:     DisplayNA,
		PremixFilesShared:        DisplayNA,
		MEFilesShared:            DisplayNA,
		HighResVideoShared:       DisplayNA,
		OnScreenEditingRequired:  DisplayNA,
		FormattingRequired:       DisplayNA,
	}
}

// Form mediates between the persisted record, the editable state, and
// the API. One instance backs one create or edit session.
type Form struct {
	client *Client

	mu       sync.Mutex
	phase    Phase
	inFlight bool

	mode     Mode
	recordID uint

	State    FormState
	Projects []ProjectRef
	lastErr  error
}

func NewForm(client *Client) *Form {
	return &Form{client: client, phase: PhaseLoading, State: NewFormState()}
}

func (f *Form) Phase() Phase {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phase
}

func (f *Form) LastError() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

// Load prepares the form. In create mode only the reference projects
// are fetched. In edit mode the record and the project list are fetched
// concurrently and the form becomes Ready only once both arrive; either
// failure fails the whole load.
func (f *Form) Load(ctx context.Context, mode Mode, id uint) error {
	f.mu.Lock()
	f.mode = mode
	f.recordID = id
	f.phase = PhaseLoading
	f.mu.Unlock()

	if mode == ModeCreate {
		projects, err := f.client.FetchProjects(ctx)
		if err != nil {
			return f.failLoad(err)
		}
		f.mu.Lock()
		f.Projects = projects
		f.State = NewFormState()
		f.phase = PhaseReady
		f.mu.Unlock()
		return nil
	}

	var (
		wg          sync.WaitGroup
		projects    []ProjectRef
		record      *Record
		projectsErr error
		recordErr   error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		projects, projectsErr = f.client.FetchProjects(ctx)
	}()
	go func() {
		defer wg.Done()
		record, recordErr = f.client.FetchDeliveryStatus(ctx, id)
	}()
	wg.Wait()

	if projectsErr != nil {
		return f.failLoad(projectsErr)
	}
	if recordErr != nil {
		return f.failLoad(recordErr)
	}

	f.mu.Lock()
	f.Projects = projects
	f.State = stateFromRecord(record)
	f.phase = PhaseReady
	f.mu.Unlock()
	return nil
}

func (f *Form) failLoad(err error) error {
	f.mu.Lock()
	f.lastErr = err
	f.phase = PhaseLoadFailed
	f.mu.Unlock()
	return err
}

// Validate checks the field-local constraints. All violations are
// reported together.
func Validate(state FormState) error {
	var violations []string
	if strings.TrimSpace(state.CRMProjectID) == "" {
		violations = append(violations, "crm_project_id is required")
	}
	if state.ProjectType != "QVO" && state.ProjectType != "DT" {
		violations = append(violations, "project_type must be QVO or DT")
	}
	if strings.TrimSpace(state.ServiceType) == "" {
		violations = append(violations, "service_type is required")
	}
	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

// Submit validates, converts tri-states to stored form, prunes the
// fields of the other project type, and issues exactly one create or
// update request. It never retries; the caller re-invokes on failure.
func (f *Form) Submit(ctx context.Context) (*Record, error) {
	f.mu.Lock()
	if f.inFlight {
		f.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	state := f.State
	mode := f.mode
	recordID := f.recordID
	f.inFlight = true
	f.phase = PhaseSubmitting
	f.mu.Unlock()

	record, err := f.submit(ctx, state, mode, recordID)

	f.mu.Lock()
	f.inFlight = false
	if err != nil {
		// The failure stays observable through LastError while the form
		// returns to Ready for correction and resubmission.
		f.lastErr = err
		f.phase = PhaseReady
	} else {
		f.lastErr = nil
		f.phase = PhaseSucceeded
	}
	f.mu.Unlock()
	return record, err
}

func (f *Form) submit(ctx context.Context, state FormState, mode Mode, recordID uint) (*Record, error) {
	if err := Validate(state); err != nil {
		return nil, err
	}

	payload := PruneForVariant(BuildPayload(state), state.ProjectType)
	if mode == ModeCreate {
		return f.client.CreateDeliveryStatus(ctx, payload)
	}
	return f.client.UpdateDeliveryStatus(ctx, recordID, payload)
}

// BuildPayload converts the form state to the full stored-representation
// map. Tri-states become true/false/null, unset optionals stay null.
// The result still carries both variants' keys; PruneForVariant removes
// the inapplicable side.
func BuildPayload(state FormState) map[string]any {
	payload := map[string]any{
		"crm_project_id": state.CRMProjectID,
		"project_type":   state.ProjectType,
		"service_type":   state.ServiceType,

		"number_of_files":             intOrNil(state.NumberOfFiles),
		"deadline":                    textOrNil(state.Deadline),
		"output_format":               textOrNil(state.OutputFormat),
		"open_project_files_provided": boolOrNil(state.OpenProjectFilesProvided),

		"total_duration_minutes":     intOrNil(state.TotalDurationMinutes),
		"language_pair":              textOrNil(state.LanguagePair),
		"target_language_dialect":    textOrNil(state.TargetLanguageDialect),
		"voice_match_needed":         boolOrNil(state.VoiceMatchNeeded),
		"lip_match_needed":           boolOrNil(state.LipMatchNeeded),
		"sound_balancing_needed":     boolOrNil(state.SoundBalancingNeeded),
		"premix_files_shared":        boolOrNil(state.PremixFilesShared),
		"me_files_shared":            boolOrNil(state.MEFilesShared),
		"high_res_video_shared":      boolOrNil(state.HighResVideoShared),
		"caption_type":               textOrNil(state.CaptionType),
		"on_screen_editing_required": boolOrNil(state.OnScreenEditingRequired),
		"deliverable":                textOrNil(state.Deliverable),
		"voice_over_gender":          textOrNil(state.VoiceOverGender),

		"source_word_count":   intOrNil(state.SourceWordCount),
		"source_languages":    textOrNil(state.SourceLanguages),
		"target_languages":    textOrNil(state.TargetLanguages),
		"formatting_required": boolOrNil(state.FormattingRequired),
	}
	return payload
}

func stateFromRecord(record *Record) FormState {
	state := NewFormState()
	state.CRMProjectID = strconv.FormatUint(uint64(record.CRMProjectID), 10)
	state.ProjectType = record.ProjectType
	state.ServiceType = record.ServiceType

	state.NumberOfFiles = record.NumberOfFiles
	if record.Deadline != nil {
		state.Deadline = CalendarDate(*record.Deadline)
	}
	state.OutputFormat = textValue(record.OutputFormat)
	state.OpenProjectFilesProvided = ToDisplay(record.OpenProjectFilesProvided)

	state.TotalDurationMinutes = record.TotalDurationMinutes
	state.LanguagePair = textValue(record.LanguagePair)
	state.TargetLanguageDialect = textValue(record.TargetLanguageDialect)
	state.VoiceMatchNeeded = ToDisplay(record.VoiceMatchNeeded)
	state.LipMatchNeeded = ToDisplay(record.LipMatchNeeded)
	state.SoundBalancingNeeded = ToDisplay(record.SoundBalancingNeeded)
	state.PremixFilesShared = ToDisplay(record.PremixFilesShared)
	state.MEFilesShared = ToDisplay(record.MEFilesShared)
	state.HighResVideoShared = ToDisplay(record.HighResVideoShared)
	state.CaptionType = textValue(record.CaptionType)
	state.OnScreenEditingRequired = ToDisplay(record.OnScreenEditingRequired)
	state.Deliverable = textValue(record.Deliverable)
	state.VoiceOverGender = textValue(record.VoiceOverGender)

	state.SourceWordCount = record.SourceWordCount
	state.SourceLanguages = textValue(record.SourceLanguages)
	state.TargetLanguages = textValue(record.TargetLanguages)
	state.FormattingRequired = ToDisplay(record.FormattingRequired)
	return state
}

// CalendarDate trims a date string to its calendar-date prefix. Parsing
// the full timestamp and reformatting could shift the date across a
// time zone boundary; the prefix never does.
func CalendarDate(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}

func intOrNil(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func textOrNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func boolOrNil(display string) any {
	stored := ToStored(display)
	if stored == nil {
		return nil
	}
	return *stored
}

func textValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
