package domain

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// State is the whole aggregate: six collections, the session pointer and the
// theme flag. It is persisted and restored as one document; every collection
// keeps insertion order.
type State struct {
	Users        []User        `json:"users"`
	Rooms        []Room        `json:"rooms"`
	RoomRequests []RoomRequest `json:"room_requests"`
	Complaints   []Complaint   `json:"complaints"`
	Payments     []Payment     `json:"payments"`
	Notices      []Notice      `json:"notices"`
	CurrentUser  *User         `json:"current_user,omitempty"`
	Theme        Theme         `json:"theme"`
}

// Seed is the first-run state: a single admin account and nothing else.
func Seed() *State {
	return &State{
		Users: []User{
			{
				ID:       "1",
				Username: "admin",
				Password: "123456",
				Email:    "admin@hostel.com",
				Role:     RoleAdmin,
			},
		},
		Theme: ThemeLight,
	}
}
