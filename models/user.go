package models

// User is the signed-in visitor identity. Phone and Address are optional and
// empty until the profile is filled in.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// ProfileUpdate carries the fields a visitor may change on the dashboard.
// Empty fields are left untouched on merge.
type ProfileUpdate struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}
