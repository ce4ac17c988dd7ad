package domain

// Client is a business client record. UserID identifies the creator and is
// set once at insert time; the ownership filter keys on it.
type Client struct {
	ID         string   `json:"_id"`
	BusinessID string   `json:"id"`
	UserID     string   `json:"user"`
	Name       string   `json:"name"`
	Phone      string   `json:"phone"`
	Email      string   `json:"email"`
	Address    string   `json:"address"`
	Bills      []string `json:"bills"`
}

// OwnerID satisfies the Owned interface used by the response filter.
func (c Client) OwnerID() string { return c.UserID }
