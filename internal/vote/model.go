package vote

import "time"

// Type represents the kind of vote cast on a session
type Type string

const (
	// TypeGoing and TypeNotGoing are attendance declarations.
	TypeGoing    Type = "VOTE_YES"
	TypeNotGoing Type = "VOTE_NO"
	// TypeCourt and TypeShuttle are resource pledges: each one raises the
	// session's effective court/shuttle count at settlement time.
	TypeCourt   Type = "COURT"
	TypeShuttle Type = "SHUTTLE"
)

// Valid reports whether t is a known vote type.
func (t Type) Valid() bool {
	switch t {
	case TypeGoing, TypeNotGoing, TypeCourt, TypeShuttle:
		return true
	}
	return false
}

// Attendance reports whether t is an attendance declaration (as opposed to
// a resource pledge).
func (t Type) Attendance() bool {
	return t == TypeGoing || t == TypeNotGoing
}

// Vote is a direct declaration by a user on a session
type Vote struct {
	ID        int64     `json:"id"`
	SessionID int64     `json:"session_id"`
	UserID    int64     `json:"user_id"`
	VoteType  Type      `json:"vote_type"`
	CreatedAt time.Time `json:"created_at"`

	// Populated from JOIN
	UserName   string `json:"user_name,omitempty"`
	UserGender string `json:"user_gender,omitempty"`
}

// ProxyVote is an attendance declaration made by one user on behalf of
// another. Financial responsibility binds to the voter; the target's gender
// picks the pricing tier.
type ProxyVote struct {
	ID        int64     `json:"id"`
	SessionID int64     `json:"session_id"`
	VoterID   int64     `json:"voter_id"`
	TargetID  int64     `json:"target_id"`
	VoteType  Type      `json:"vote_type"`
	CreatedAt time.Time `json:"created_at"`

	// Populated from JOIN
	VoterName    string `json:"voter_name,omitempty"`
	VoterGender  string `json:"voter_gender,omitempty"`
	TargetName   string `json:"target_name,omitempty"`
	TargetGender string `json:"target_gender,omitempty"`
}
