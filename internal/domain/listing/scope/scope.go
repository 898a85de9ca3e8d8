package scope

// Scope selects which entity a listing request runs against.
type Scope string

// Listing scope constants.
const (
	// Video lists published videos.
	Video Scope = "video"
	// Comment lists comments under a parent video.
	Comment Scope = "comment"
)

// IsValid checks if the scope is one of the supported values.
func (s Scope) IsValid() bool {
	return s == Video || s == Comment
}
