package domain

// ID is used across domain entities.
type ID int64

// Role of an authenticated account.
type Role string

const (
	RolePassenger Role = "passenger"
	RoleCompany   Role = "company"
)

func (r Role) Valid() bool {
	return r == RolePassenger || r == RoleCompany
}

// RequestContext carries authenticated user info when available.
type RequestContext struct {
	UserID    ID     `json:"userId"`
	Role      Role   `json:"role"`
	SessionID string `json:"sessionId"`
}
