package entity

// RootAccountName is the display name given to the root account when it is included in a report.
const RootAccountName = "Root Account"

// Account identifies one tenant in the platform's account hierarchy.
type Account struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Session is the authenticated handle passed to every API call.
type Session struct {
	BaseURL   string `json:"base_url"`
	AuthToken string `json:"-"`
	AccountID string `json:"account_id,omitempty"`
}
