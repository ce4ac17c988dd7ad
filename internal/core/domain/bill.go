package domain

// Bill is a billing record. Ref is unique across the collection. ClientID
// optionally back-links a Client, whose Bills list tracks the bill's ID.
type Bill struct {
	ID          string `json:"_id"`
	Ref         string `json:"ref"`
	UserID      string `json:"user"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	Description string `json:"description"`
	File        string `json:"file"`
	ClientID    string `json:"client"`
}

// OwnerID satisfies the Owned interface used by the response filter.
func (b Bill) OwnerID() string { return b.UserID }
