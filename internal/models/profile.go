package models

import "time"

type Profile struct {
	ID        string    `json:"id"`
	Username  *string   `json:"username"`
	FullName  *string   `json:"full_name"`
	Website   *string   `json:"website"`
	Bio       *string   `json:"bio"`
	UpdatedAt time.Time `json:"updated_at"`
}
