package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	PasswordHash        string    `json:"-"`
	Bio                 string    `json:"bio"`
	Skills              []string  `json:"skills"`
	LinkedIn            string    `json:"linkedin"`
	Phone               string    `json:"phone"`
	PublicWalletAddress string    `json:"public_wallet_address"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
