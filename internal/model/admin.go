package model

type Admin struct {
	User
	Department string `json:"department"`
}
