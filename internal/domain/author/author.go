package author

// DeletedUsername is the placeholder shown when a listing references a
// user record that no longer exists. Rows are never dropped for a missing
// author.
const DeletedUsername = "deleted-user"

// Summary is the denormalized author block attached to listing items.
type Summary struct {
	id        string
	username  string
	fullName  string
	avatarURL string
	deleted   bool
}

// Reconstruct creates a Summary from a stored user record.
func Reconstruct(id, username, fullName, avatarURL string) Summary {
	return Summary{id: id, username: username, fullName: fullName, avatarURL: avatarURL}
}

// Deleted creates the placeholder Summary for a missing user record.
func Deleted(id string) Summary {
	return Summary{id: id, username: DeletedUsername, deleted: true}
}

// ID returns the user identifier.
func (s *Summary) ID() string { return s.id }

// Username returns the user's handle.
func (s *Summary) Username() string { return s.username }

// FullName returns the user's display name.
func (s *Summary) FullName() string { return s.fullName }

// AvatarURL returns the avatar image URL.
func (s *Summary) AvatarURL() string { return s.avatarURL }

// IsDeleted reports whether this is the missing-user placeholder.
func (s *Summary) IsDeleted() bool { return s.deleted }
