package domain

import "time"

// SharedGoal couples an opaque share token with the point-in-time snapshot it
// resolves to. The snapshot is immutable after creation: later edits or a
// delete of the live goal never show through.
type SharedGoal struct {
	Token    string    `json:"token"`
	OwnerID  string    `json:"owner_id"`
	Goal     Goal      `json:"goal"`
	SharedAt time.Time `json:"shared_at"`
}

// InviteLink statuses.
const (
	InviteActive  = "active"
	InviteExpired = "expired"
	InviteRevoked = "revoked"
)

// InviteLink is the reserved shape for expiring, revocable shares. The share
// resolution path does not consult it yet.
type InviteLink struct {
	ID        string    `json:"id"`
	GoalID    string    `json:"goal_id"`
	InviterID string    `json:"inviter_id"`
	Expires   time.Time `json:"expires"`
	Status    string    `json:"status"`
}
