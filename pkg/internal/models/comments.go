package models

type Comment struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Text     string `json:"text"`
	// ISO-8601; filled with the client clock at submission, the backend owns
	// the authoritative value.
	Timestamp string `json:"timestamp"`
}

func (c Comment) AuthorName() string {
	if len(c.Username) > 0 {
		return c.Username
	}
	return c.UserID
}
