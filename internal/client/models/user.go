// Package models defines the client-side data shapes: the persisted session
// user, the in-memory directory entry and login credentials.
package models

import "strings"

// User is the remote user record as returned by the directory API. The
// login response fills the identity fields and the tokens; the users list
// fills the rest.
type User struct {
	ID         int      `json:"id"`
	Username   string   `json:"username,omitempty"`
	Email      string   `json:"email,omitempty"`
	FirstName  string   `json:"firstName,omitempty"`
	LastName   string   `json:"lastName,omitempty"`
	MaidenName string   `json:"maidenName,omitempty"`
	Gender     string   `json:"gender,omitempty"`
	Age        int      `json:"age,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	BirthDate  string   `json:"birthDate,omitempty"`
	Image      string   `json:"image,omitempty"`
	University string   `json:"university,omitempty"`
	Address    *Address `json:"address,omitempty"`
	Hair       *Hair    `json:"hair,omitempty"`
	Company    *Company `json:"company,omitempty"`

	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

type Address struct {
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	StateCode  string `json:"stateCode,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

type Hair struct {
	Color string `json:"color,omitempty"`
	Type  string `json:"type,omitempty"`
}

type Company struct {
	Name       string `json:"name,omitempty"`
	Title      string `json:"title,omitempty"`
	Department string `json:"department,omitempty"`
}

// FullName joins first and last name the way the directory renders it.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
