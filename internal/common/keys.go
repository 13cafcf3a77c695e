package common

// Storage keys. Values are JSON text.
const (
	KeyUserData       = "userData"
	KeyFavourites     = "userFavourites"
	KeySignupProgress = "SIGNUP_PROGRESS" // reserved, nothing writes it yet
)
