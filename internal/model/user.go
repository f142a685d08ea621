package model

type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

type Role int

const (
	RoleAnonymous Role = iota
	RoleUser
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleUser:
		return "user"
	case RoleAdmin:
		return "admin"
	default:
		return "anonymous"
	}
}

// Caller is the identity a request acts as. The zero value is an anonymous caller.
type Caller struct {
	UserID int64
	Email  string
	Role   Role
}

func Anonymous() Caller {
	return Caller{Role: RoleAnonymous}
}

func CallerFromUser(user *User) Caller {
	if user == nil {
		return Anonymous()
	}

	role := RoleUser
	if user.IsAdmin {
		role = RoleAdmin
	}

	return Caller{
		UserID: user.ID,
		Email:  user.Email,
		Role:   role,
	}
}

func (c Caller) IsAuthenticated() bool {
	return c.Role != RoleAnonymous
}

func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}
