package domain

// UserRole is the role a user plays on the platform.
type UserRole string

const (
	RoleClient     UserRole = "client"
	RoleAccountant UserRole = "accountant"
	RoleAdmin      UserRole = "admin"
)

func (r UserRole) IsValid() bool {
	switch r {
	case RoleClient, RoleAccountant, RoleAdmin:
		return true
	}
	return false
}

// User represents a user of the application in the domain.
type User struct {
	ID           string   `json:"id"`
	Email        string   `json:"email"` // unique, compared case-sensitively
	PasswordHash string   `json:"-"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Phone        *string  `json:"phone,omitempty"`
	Role         UserRole `json:"role"`
	Address      *string  `json:"address,omitempty"`
	City         *string  `json:"city,omitempty"`
	Postcode     *string  `json:"postcode,omitempty"`
	IsActive     bool     `json:"isActive"`
	AuditFields
}

// UserPatch lists the user fields that may change after registration.
// Email is the login identity and is not patchable.
type UserPatch struct {
	PasswordHash    *string
	FirstName       *string
	LastName        *string
	Phone           *string
	Role            *UserRole
	Address         *string
	City            *string
	Postcode        *string
	IsActive        *bool
	ExpectedVersion *int
}

// Apply merges the provided patch fields into u.
func (u *User) Apply(p UserPatch) {
	set(&u.PasswordHash, p.PasswordHash)
	set(&u.FirstName, p.FirstName)
	set(&u.LastName, p.LastName)
	setOpt(&u.Phone, p.Phone)
	set(&u.Role, p.Role)
	setOpt(&u.Address, p.Address)
	setOpt(&u.City, p.City)
	setOpt(&u.Postcode, p.Postcode)
	set(&u.IsActive, p.IsActive)
}
