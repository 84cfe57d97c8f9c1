package transport

// LoginRequest carries simulated credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdateRequest is a partial profile edit; absent fields stay untouched.
type ProfileUpdateRequest struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	ProfilePicture *string `json:"profile_picture"`
	Bio            *string `json:"bio"`
	Theme          *string `json:"theme"`
}

// SubGoalRequest describes a sub-goal on creation. Deadline is RFC 3339.
type SubGoalRequest struct {
	Title    string `json:"title"`
	Status   string `json:"status"`
	Deadline string `json:"deadline"`
}

// GoalRequest describes a new goal. Progress is derived and not accepted.
type GoalRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Status      string           `json:"status"`
	Deadline    string           `json:"deadline"`
	SubGoals    []SubGoalRequest `json:"sub_goals"`
}

// GoalUpdateRequest is a partial goal edit. A non-nil SubGoals replaces the
// sequence wholesale; RemoveDeadline clears the deadline.
type GoalUpdateRequest struct {
	Title          *string          `json:"title"`
	Description    *string          `json:"description"`
	Status         *string          `json:"status"`
	Deadline       *string          `json:"deadline"`
	RemoveDeadline bool             `json:"remove_deadline"`
	SubGoals       []SubGoalRequest `json:"sub_goals"`
}

// SubGoalUpdateRequest is a partial sub-goal edit.
type SubGoalUpdateRequest struct {
	Title          *string `json:"title"`
	Status         *string `json:"status"`
	Deadline       *string `json:"deadline"`
	RemoveDeadline bool    `json:"remove_deadline"`
}
