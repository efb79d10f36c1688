package models

// Clerk user lifecycle statuses. A signup lands in application_submitted and an
// admin moves it to approved (or inactive on rejection).
const (
	ClerkStatusApplicationSubmitted = "application_submitted"
	ClerkStatusApproved             = "approved"
	ClerkStatusActive               = "active"
	ClerkStatusInactive             = "inactive"
	ClerkStatusSuspended            = "suspended"
)

// ClerkUser holds the structure for the clerk_users collection
type ClerkUser struct {
	ID          string      `json:"id" bson:"_id"`
	Email       string      `json:"email" bson:"email"`
	Password    string      `json:"-" bson:"password"`
	FullName    string      `json:"full_name" bson:"full_name"`
	EmployeeID  string      `json:"employee_id" bson:"employee_id"`
	PhoneNumber string      `json:"phone_number" bson:"phone_number"`
	Department  string      `json:"department" bson:"department"`
	Designation string      `json:"designation" bson:"designation"`
	AvatarURL   string      `json:"avatar_url,omitempty" bson:"avatar_url,omitempty"`
	Status      string      `json:"status" bson:"status"`
	Role        string      `json:"role" bson:"role"`
	LastLogin   interface{} `json:"last_login,omitempty" bson:"last_login,omitempty"`
	CreatedAt   interface{} `json:"created_at" bson:"created_at"`
	UpdatedAt   interface{} `json:"updated_at" bson:"updated_at"`
}

// ClerkLoginResponse is the RPC-style envelope returned by the clerk login route.
// Failed credentials are reported through Success/Message with a 200 status, not an
// HTTP error, so the login form can render the message directly.
type ClerkLoginResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	User    *ClerkUser `json:"user,omitempty"`
	Token   string     `json:"token,omitempty"`
}

// ApplicationStatusResponse is returned by the application status lookup. A missing
// application is not an error: Status stays nil and the caller renders the
// "Application Not Found" state.
type ApplicationStatusResponse struct {
	Status *string `json:"status"`
}
