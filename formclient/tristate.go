package formclient

// Display tokens for tri-state boolean form fields. A question the user
// has not answered shows as N/A and is stored as null.
const (
	DisplayYes = "Yes"
	DisplayNo  = "No"
	DisplayNA  = "N/A"
)

// ToDisplay maps a stored tri-state boolean to its form token.
// nil means unknown. Total, never fails.
func ToDisplay(stored *bool) string {
	switch {
	case stored == nil:
		return DisplayNA
	case *stored:
		return DisplayYes
	default:
		return DisplayNo
	}
}

// ToStored maps a form token back to the stored representation.
// Anything that is not exactly "Yes" or "No" collapses to nil.
func ToStored(display string) *bool {
	switch display {
	case DisplayYes:
		v := true
		return &v
	case DisplayNo:
		v := false
		return &v
	default:
		return nil
	}
}
