package models

import "time"

// ProjectType discriminates the two delivery-status shapes: QVO (Quality
// Voice Over) records carry dubbing fields, DT (Document Translation)
// records carry translation fields. Exactly one variant group is populated
// in any persisted row.
type ProjectType string

const (
	ProjectTypeQVO ProjectType = "QVO"
	ProjectTypeDT  ProjectType = "DT"
)

func ValidProjectType(s string) bool {
	return ProjectType(s) == ProjectTypeQVO || ProjectType(s) == ProjectTypeDT
}

// DeliveryStatus tracks delivery requirements for one CRM project.
// Tri-state booleans are stored as *bool: nil means the question was not
// answered ("N/A" in the form).
type DeliveryStatus struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	OwnerID      uint   `gorm:"not null;index" json:"owner_id"`
	CRMProjectID uint   `gorm:"column:crm_project_id;not null;index" json:"crm_project_id"`
	ProjectType  string `gorm:"type:delivery_project_type;not null" json:"project_type"`
	ServiceType  string `gorm:"size:200;not null" json:"service_type"`

	// Common optional fields.
	NumberOfFiles            *int       `json:"number_of_files,omitempty"`
	Deadline                 *time.Time `gorm:"type:date" json:"deadline,omitempty"`
	OutputFormat             *string    `gorm:"size:50" json:"output_format,omitempty"`
	OpenProjectFilesProvided *bool      `json:"open_project_files_provided"`

	// QVO variant.
	TotalDurationMinutes    *int    `json:"total_duration_minutes,omitempty"`
	LanguagePair            *string `gorm:"size:200" json:"language_pair,omitempty"`
	TargetLanguageDialect   *string `gorm:"size:200" json:"target_language_dialect,omitempty"`
	VoiceMatchNeeded        *bool   `json:"voice_match_needed,omitempty"`
	LipMatchNeeded          *bool   `json:"lip_match_needed,omitempty"`
	SoundBalancingNeeded    *bool   `json:"sound_balancing_needed,omitempty"`
	PremixFilesShared       *bool   `json:"premix_files_shared,omitempty"`
	MEFilesShared           *bool   `gorm:"column:me_files_shared" json:"me_files_shared,omitempty"`
	HighResVideoShared      *bool   `json:"high_res_video_shared,omitempty"`
	CaptionType             *string `gorm:"size:100" json:"caption_type,omitempty"`
	OnScreenEditingRequired *bool   `json:"on_screen_editing_required,omitempty"`
	Deliverable             *string `gorm:"size:100" json:"deliverable,omitempty"`
	VoiceOverGender         *string `gorm:"size:10" json:"voice_over_gender,omitempty"`

	// DT variant.
	SourceWordCount    *int    `json:"source_word_count,omitempty"`
	SourceLanguages    *string `gorm:"size:200" json:"source_languages,omitempty"`
	TargetLanguages    *string `gorm:"size:200" json:"target_languages,omitempty"`
	FormattingRequired *bool   `json:"formatting_required,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClearQVOFields nils every QVO-only column.
func (d *DeliveryStatus) ClearQVOFields() {
	d.TotalDurationMinutes = nil
	d.LanguagePair = nil
	d.TargetLanguageDialect = nil
	d.VoiceMatchNeeded = nil
	d.LipMatchNeeded = nil
	d.SoundBalancingNeeded = nil
	d.PremixFilesShared = nil
	d.MEFilesShared = nil
	d.HighResVideoShared = nil
	d.CaptionType = nil
	d.OnScreenEditingRequired = nil
	d.Deliverable = nil
	d.VoiceOverGender = nil
}

// ClearDTFields nils every DT-only column.
func (d *DeliveryStatus) ClearDTFields() {
	d.SourceWordCount = nil
	d.SourceLanguages = nil
	d.TargetLanguages = nil
	d.FormattingRequired = nil
}

// ClearOtherVariant enforces the one-variant invariant for the record's
// own project type.
func (d *DeliveryStatus) ClearOtherVariant() {
	switch ProjectType(d.ProjectType) {
	case ProjectTypeQVO:
		d.ClearDTFields()
	case ProjectTypeDT:
		d.ClearQVOFields()
	}
}
