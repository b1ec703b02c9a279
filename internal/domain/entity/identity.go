// Package entity contains the core business objects of the project.
package entity

// Identity is the lightweight locally-validated user record that gates
// review submission. There is no account behind it: the name is a display
// string and the registration number is checked for format only.
type Identity struct {
	Name  string `json:"name"`   // Non-empty display name, at most 50 characters.
	RegNo string `json:"reg_no"` // Exactly 7 decimal digits.
}
