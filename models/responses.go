package models

// ErrorResponse is the JSON body returned for failed API requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AuthResponse is returned on successful register/login. The same token is
// also sent in the Authorization response header.
type AuthResponse struct {
	Login string `json:"login"`
	Token string `json:"token"`
}
