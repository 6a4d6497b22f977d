package domain

// User is a record owned by the remote identity service. The gateway only
// holds it for the lifetime of a single response.
type User struct {
	ID       string
	UserName string
	Email    string
	Role     UserRole
}

// UserResult is the identity service's answer to a user mutation.
type UserResult struct {
	Message string
	User    *User
}

// LoginResult is the identity service's answer to a successful login.
type LoginResult struct {
	Message string
	Token   string
	User    *User
}

// Caller is the authenticated principal of a single inbound request.
// A nil *Caller means the request is anonymous.
type Caller struct {
	ID       string
	Role     UserRole
	Email    string
	UserName string
	Token    string
}

// IsAdmin reports whether the caller holds the admin role.
func (c *Caller) IsAdmin() bool {
	return c != nil && c.Role.IsAdmin()
}

// AsUser projects the caller onto the User shape returned by checkToken.
func (c *Caller) AsUser() *User {
	if c == nil {
		return nil
	}
	return &User{
		ID:       c.ID,
		UserName: c.UserName,
		Email:    c.Email,
		Role:     c.Role,
	}
}

// RegisterInput is the body sent to the identity service to create a user.
type RegisterInput struct {
	UserName string `json:"user_name" validate:"required"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=5"`
}

// Credentials is the body of a login attempt.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserModify carries the optional fields of a self-update.
type UserModify struct {
	UserName *string `json:"user_name,omitempty" validate:"omitempty,min=1"`
	Email    *string `json:"email,omitempty"     validate:"omitempty,email"`
	Password *string `json:"password,omitempty"  validate:"omitempty,min=5"`
}
