package dto

import (
	"fmt"
	"strconv"
	"strings"
)

// FlexibleID is a uint that unmarshals from a JSON number or a numeric
// string. Form clients keep ids as the strings their inputs hold and
// submit them unconverted.
type FlexibleID uint

func (f *FlexibleID) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", s)
	}
	*f = FlexibleID(v)
	return nil
}

// DeliveryStatusDTO is the stored-representation write payload for a
// delivery status record. Tri-state booleans arrive as true/false/null;
// fields belonging to the non-selected variant are expected to be absent
// from the request body, and the service rejects payloads that populate
// both variants.
type DeliveryStatusDTO struct {
	CRMProjectID FlexibleID `json:"crm_project_id" binding:"required"`
	ProjectType  string `json:"project_type" binding:"required"`
	ServiceType  string `json:"service_type" binding:"required"`

	NumberOfFiles            *int    `json:"number_of_files,omitempty"`
	Deadline                 *string `json:"deadline,omitempty"`
	OutputFormat             *string `json:"output_format,omitempty"`
	OpenProjectFilesProvided *bool   `json:"open_project_files_provided,omitempty"`

	TotalDurationMinutes    *int    `json:"total_duration_minutes,omitempty"`
	LanguagePair            *string `json:"language_pair,omitempty"`
	TargetLanguageDialect   *string `json:"target_language_dialect,omitempty"`
	VoiceMatchNeeded        *bool   `json:"voice_match_needed,omitempty"`
	LipMatchNeeded          *bool   `json:"lip_match_needed,omitempty"`
	SoundBalancingNeeded    *bool   `json:"sound_balancing_needed,omitempty"`
	PremixFilesShared       *bool   `json:"premix_files_shared,omitempty"`
	MEFilesShared           *bool   `json:"me_files_shared,omitempty"`
	HighResVideoShared      *bool   `json:"high_res_video_shared,omitempty"`
	CaptionType             *string `json:"caption_type,omitempty"`
	OnScreenEditingRequired *bool   `json:"on_screen_editing_required,omitempty"`
	Deliverable             *string `json:"deliverable,omitempty"`
	VoiceOverGender         *string `json:"voice_over_gender,omitempty"`

	SourceWordCount    *int    `json:"source_word_count,omitempty"`
	SourceLanguages    *string `json:"source_languages,omitempty"`
	TargetLanguages    *string `json:"target_languages,omitempty"`
	FormattingRequired *bool   `json:"formatting_required,omitempty"`
}

// HasQVOFields reports whether any QVO-only field is set.
func (d *DeliveryStatusDTO) HasQVOFields() bool {
	return d.TotalDurationMinutes != nil || d.LanguagePair != nil ||
		d.TargetLanguageDialect != nil || d.VoiceMatchNeeded != nil ||
		d.LipMatchNeeded != nil || d.SoundBalancingNeeded != nil ||
		d.PremixFilesShared != nil || d.MEFilesShared != nil ||
		d.HighResVideoShared != nil || d.CaptionType != nil ||
		d.OnScreenEditingRequired != nil || d.Deliverable != nil ||
		d.VoiceOverGender != nil
}

// HasDTFields reports whether any DT-only field is set.
func (d *DeliveryStatusDTO) HasDTFields() bool {
	return d.SourceWordCount != nil || d.SourceLanguages != nil ||
		d.TargetLanguages != nil || d.FormattingRequired != nil
}
