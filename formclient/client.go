package formclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Session is the per-user context injected into the client at
// construction. Token is the opaque credential attached to every call;
// ProjectIDs are the projects the session owns, used to scope reference
// data fetches.
type Session struct {
	Token      string
	ProjectIDs []uint
}

// ProjectRef is the id/name pair used to populate project selectors.
type ProjectRef struct {
	ID          uint   `json:"id"`
	ProjectName string `json:"project_name"`
}

// Record is the wire shape of a delivery status. Tri-state booleans are
// nullable; nil means unknown. Dates arrive as strings and only their
// calendar-date prefix is meaningful.
type Record struct {
	ID           uint   `json:"id"`
	CRMProjectID uint   `json:"crm_project_id"`
	ProjectType  string `json:"project_type"`
	ServiceType  string `json:"service_type"`

	NumberOfFiles            *int    `json:"number_of_files"`
	Deadline                 *string `json:"deadline"`
	OutputFormat             *string `json:"output_format"`
	OpenProjectFilesProvided *bool   `json:"open_project_files_provided"`

	TotalDurationMinutes    *int    `json:"total_duration_minutes"`
	LanguagePair            *string `json:"language_pair"`
	TargetLanguageDialect   *string `json:"target_language_dialect"`
	VoiceMatchNeeded        *bool   `json:"voice_match_needed"`
	LipMatchNeeded          *bool   `json:"lip_match_needed"`
	SoundBalancingNeeded    *bool   `json:"sound_balancing_needed"`
	PremixFilesShared       *bool   `json:"premix_files_shared"`
	MEFilesShared           *bool   `json:"me_files_shared"`
	HighResVideoShared      *bool   `json:"high_res_video_shared"`
	CaptionType             *string `json:"caption_type"`
	OnScreenEditingRequired *bool   `json:"on_screen_editing_required"`
	Deliverable             *string `json:"deliverable"`
	VoiceOverGender         *string `json:"voice_over_gender"`

	SourceWordCount    *int    `json:"source_word_count"`
	SourceLanguages    *string `json:"source_languages"`
	TargetLanguages    *string `json:"target_languages"`
	FormattingRequired *bool   `json:"formatting_required"`
}

// Client talks to the CRM API on behalf of one session.
type Client struct {
	baseURL    string
	session    Session
	httpClient *http.Client
}

func NewClient(baseURL string, session Session) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		session: session,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchProjects returns the session's reference projects. An empty
// project id set short-circuits to an empty result without a request.
func (c *Client) FetchProjects(ctx context.Context) ([]ProjectRef, error) {
	if len(c.session.ProjectIDs) == 0 {
		return []ProjectRef{}, nil
	}

	ids := make([]string, len(c.session.ProjectIDs))
	for i, id := range c.session.ProjectIDs {
		ids[i] = strconv.FormatUint(uint64(id), 10)
	}

	var projects []ProjectRef
	url := c.baseURL + "/api/projects?ids=" + strings.Join(ids, ",")
	if err := c.do(ctx, http.MethodGet, url, nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// FetchDeliveryStatus returns one of the session's own delivery status
// records for editing. A record owned by someone else reads as missing.
func (c *Client) FetchDeliveryStatus(ctx context.Context, id uint) (*Record, error) {
	var records []Record
	url := fmt.Sprintf("%s/api/delivery-status/my?ids=%d", c.baseURL, id)
	if err := c.do(ctx, http.MethodGet, url, nil, &records); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, &NotFoundError{ID: id}
	}
	return &records[0], nil
}

// CreateDeliveryStatus posts a pruned stored-representation payload.
func (c *Client) CreateDeliveryStatus(ctx context.Context, payload map[string]any) (*Record, error) {
	var created Record
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/api/delivery-status", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateDeliveryStatus replaces the editable fields of an owned record.
func (c *Client) UpdateDeliveryStatus(ctx context.Context, id uint, payload map[string]any) (*Record, error) {
	var updated Record
	url := fmt.Sprintf("%s/api/delivery-status/%d", c.baseURL, id)
	if err := c.do(ctx, http.MethodPut, url, payload, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) do(ctx context.Context, method, url string, payload any, out any) error {
	if c.session.Token == "" {
		return &NotAuthenticatedError{}
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.session.Token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	if resp.StatusCode == http.StatusNotFound {
		return &NotFoundError{}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var serverErr struct {
			Error string `json:"error"`
		}
		msg := fmt.Sprintf("request failed with status %d", resp.StatusCode)
		if json.Unmarshal(data, &serverErr) == nil && serverErr.Error != "" {
			msg = serverErr.Error
		}
		return &ApiError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
