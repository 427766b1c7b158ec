package model

// User represents a user row in the database. The password is stored
// verbatim; this API's password-retrieval endpoint mails it back as-is.
type User struct {
	ID        int64  `db:"id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Email     string `db:"email"`
	Password  string `db:"password"`
}

// RegisterRequest carries the form fields of a registration request.
type RegisterRequest struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
}

// LoginRequest carries login credentials, from either a JSON body or form fields.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the successful login body with the issued bearer token.
type LoginResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
}
