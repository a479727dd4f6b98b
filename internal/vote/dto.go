package vote

import "time"

// CastVoteRequest represents the request body for casting a direct vote
type CastVoteRequest struct {
	UserID   int64  `json:"user_id" validate:"required,min=1"`
	VoteType string `json:"vote_type" validate:"required,oneof=VOTE_YES VOTE_NO COURT SHUTTLE"`
}

// CastProxyVoteRequest represents the request body for voting on someone's
// behalf. When TargetID is omitted, a placeholder user is created from
// TargetName/TargetGender.
type CastProxyVoteRequest struct {
	VoterID      int64  `json:"voter_id" validate:"required,min=1"`
	TargetID     *int64 `json:"target_id,omitempty" validate:"omitempty,min=1"`
	TargetName   string `json:"target_name,omitempty" validate:"required_without=TargetID,omitempty,min=1,max=100"`
	TargetGender string `json:"target_gender,omitempty" validate:"required_without=TargetID,omitempty,oneof=male female"`
	VoteType     string `json:"vote_type" validate:"required,oneof=VOTE_YES VOTE_NO"`
}

// VoteResponse represents the response for a direct vote
type VoteResponse struct {
	ID         int64  `json:"id"`
	SessionID  int64  `json:"session_id"`
	UserID     int64  `json:"user_id"`
	UserName   string `json:"user_name,omitempty"`
	UserGender string `json:"user_gender,omitempty"`
	VoteType   Type   `json:"vote_type"`
	CreatedAt  string `json:"created_at"`
}

// ProxyVoteResponse represents the response for a proxy vote
type ProxyVoteResponse struct {
	ID           int64  `json:"id"`
	SessionID    int64  `json:"session_id"`
	VoterID      int64  `json:"voter_id"`
	VoterName    string `json:"voter_name,omitempty"`
	TargetID     int64  `json:"target_id"`
	TargetName   string `json:"target_name,omitempty"`
	TargetGender string `json:"target_gender,omitempty"`
	VoteType     Type   `json:"vote_type"`
	CreatedAt    string `json:"created_at"`
}

// ToResponse converts a Vote model to a VoteResponse DTO
func (v *Vote) ToResponse() *VoteResponse {
	return &VoteResponse{
		ID:         v.ID,
		SessionID:  v.SessionID,
		UserID:     v.UserID,
		UserName:   v.UserName,
		UserGender: v.UserGender,
		VoteType:   v.VoteType,
		CreatedAt:  v.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToResponse converts a ProxyVote model to a ProxyVoteResponse DTO
func (pv *ProxyVote) ToResponse() *ProxyVoteResponse {
	return &ProxyVoteResponse{
		ID:           pv.ID,
		SessionID:    pv.SessionID,
		VoterID:      pv.VoterID,
		VoterName:    pv.VoterName,
		TargetID:     pv.TargetID,
		TargetName:   pv.TargetName,
		TargetGender: pv.TargetGender,
		VoteType:     pv.VoteType,
		CreatedAt:    pv.CreatedAt.UTC().Format(time.RFC3339),
	}
}
