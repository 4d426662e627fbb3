package dto

// RegisterRequest is the payload for POST /register
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the payload for POST /login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserInfo is the public profile echoed to clients, name only
type UserInfo struct {
	Name string `json:"name"`
}

// UserAccount is the profile with the spendable balance, echoed on login
type UserAccount struct {
	Name          string `json:"name"`
	CreditBalance int64  `json:"creditBalance"`
}

// RegisterResponse is the outcome of a successful registration. The balance
// is not echoed; the client fetches it from the credits endpoint.
type RegisterResponse struct {
	Success bool     `json:"success"`
	Token   string   `json:"token"`
	User    UserInfo `json:"user"`
}

// LoginResponse is the outcome of a successful login
type LoginResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    UserAccount `json:"user"`
}

// CreditsResponse is the outcome of a balance lookup
type CreditsResponse struct {
	Success bool     `json:"success"`
	Credits int64    `json:"credits"`
	User    UserInfo `json:"user"`
}
