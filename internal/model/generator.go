package model

// GenerateRequest represents a password generation request.
// Pointer bools distinguish a missing flag (nil -> false) from an explicit value.
type GenerateRequest struct {
	Length    int   `json:"length"`
	Digits    *bool `json:"digits"`
	Uppercase *bool `json:"uppercase"`
	Symbols   *bool `json:"symbols"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
}
