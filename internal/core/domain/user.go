package domain

// User is an authenticated principal. Staff users may mutate any price list;
// everyone else is confined to lists they own or administer.
type User struct {
	UserID       string `json:"userID"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	IsStaff      bool   `json:"isStaff"`
	PasswordHash string `json:"-"`
	AuditFields
}
