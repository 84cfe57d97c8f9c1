package domain

// User represents the signed-in identity owning a goal collection.
type User struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profile_picture,omitempty"`
	Bio            string `json:"bio,omitempty"`
	Theme          string `json:"theme,omitempty"`
}

// ProfileUpdate carries a partial profile edit; nil fields are left untouched.
type ProfileUpdate struct {
	Name           *string `json:"name,omitempty"`
	Email          *string `json:"email,omitempty"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
	Bio            *string `json:"bio,omitempty"`
	Theme          *string `json:"theme,omitempty"`
}

// Apply merges the non-nil fields of the update into the user.
func (u *User) Apply(update ProfileUpdate) {
	if u == nil {
		return
	}
	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Email != nil {
		u.Email = *update.Email
	}
	if update.ProfilePicture != nil {
		u.ProfilePicture = *update.ProfilePicture
	}
	if update.Bio != nil {
		u.Bio = *update.Bio
	}
	if update.Theme != nil {
		u.Theme = *update.Theme
	}
}
