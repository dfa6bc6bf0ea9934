package domain

// Message is a chat message in an item's room. The room id is the item id.
type Message struct {
	ID          string `json:"id,omitempty"`
	Body        string `json:"body"`
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	At          int64  `json:"at"`
}
