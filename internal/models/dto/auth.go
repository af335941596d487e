package dto

// Credentials is the register/login payload. It must never be logged.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	Message  string `json:"message"`
	UserID   int64  `json:"userID"`
	Username string `json:"username"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
