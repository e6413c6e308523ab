package tabs

import "time"

// Tab is a device standing at a station. Tab n shows station n of the paired
// user's workout for the day.
type Tab struct {
	TabNumber      int        `json:"tabNumber"`
	PasswordHash   string     `json:"-"`
	LoggedInUserID *int       `json:"loggedInUserId,omitempty"`
	PairedAt       *time.Time `json:"pairedAt,omitempty"`
}

func (t *Tab) Paired() bool {
	return t.LoggedInUserID != nil
}
