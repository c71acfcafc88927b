package models

// User is the identity of the operator currently signed in to the console.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}
