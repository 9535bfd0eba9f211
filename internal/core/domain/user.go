package domain

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

// User is an account in the hostel. Credentials are stored verbatim and
// compared by equality; there is no hashing in the persisted shape.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	FullName string `json:"full_name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

// StudentProfile is the caller-supplied part of a new student account.
type StudentProfile struct {
	Username string `validate:"required"`
	Password string `validate:"required,min=6"`
	Email    string `validate:"required,email"`
	FullName string
	Phone    string
	Address  string
}

func (p StudentProfile) Validate() error {
	return validateStruct(p)
}

// StudentUpdate carries a partial profile; nil fields are left untouched.
type StudentUpdate struct {
	Username *string
	Password *string
	Email    *string
	FullName *string
	Phone    *string
	Address  *string
}
