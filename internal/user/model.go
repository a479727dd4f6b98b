package user

import "time"

// Gender values recognised by the pricing tiers. Anything that is not
// "female" is priced as male.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// User represents a participant. Proxy-placeholder users created on the
// fly for proxy votes carry IsReal=false.
type User struct {
	ID         int64     `json:"id"`
	ExternalID string    `json:"external_id"`
	Name       string    `json:"name"`
	Gender     string    `json:"gender"`
	IsReal     bool      `json:"is_real"`
	CreatedAt  time.Time `json:"created_at"`
}
