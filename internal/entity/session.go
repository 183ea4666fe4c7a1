package entity

// Session is the authenticated binding between this client and one
// server, database and user. IsAuthenticated holds iff UserID is set; the
// token may be empty when the server relies on cookies alone.
type Session struct {
	ServerAddress string
	DatabaseName  string
	UserID        *int
	SessionToken  string
}

// IsAuthenticated -.
func (s *Session) IsAuthenticated() bool {
	return s.UserID != nil
}

// Reset clears every field.
func (s *Session) Reset() {
	*s = Session{}
}

// SessionInfo is the non-secret view of a session.
type SessionInfo struct {
	UserID        int    `json:"userId"`
	ServerAddress string `json:"serverAddress"`
	DatabaseName  string `json:"databaseName"`
}

// SessionRecord is the persisted subset of a session. The token is never part of it.
type SessionRecord struct {
	UserID        int    `json:"userId"`
	ServerAddress string `json:"serverAddress"`
	DatabaseName  string `json:"databaseName"`
}
