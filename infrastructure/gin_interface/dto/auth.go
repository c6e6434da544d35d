package dto

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type SessionResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

type SignupResponse struct {
	Message              string           `json:"message"`
	User                 UserResponse     `json:"user"`
	Session              *SessionResponse `json:"session"`
	ConfirmationRequired bool             `json:"confirmationRequired,omitempty"`
}

type LoginResponse struct {
	Message string          `json:"message"`
	User    UserResponse    `json:"user"`
	Session SessionResponse `json:"session"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
