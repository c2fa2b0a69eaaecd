// Package entity contains the core business objects of the project.
package entity

import "time"

// Account is the funds balance of an address. Unknown addresses hold zero.
type Account struct {
	Address   string    `json:"address"`
	Balance   uint64    `json:"balance"`
	UpdatedAt time.Time `json:"updated_at"`
}
