package users

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the persisted account document.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        *string            `bson:"email,omitempty"`
	Mobile       string             `bson:"mobile"`
	Country      string             `bson:"country"`
	State        string             `bson:"state,omitempty"`
	City         string             `bson:"city"`
	Village      string             `bson:"village,omitempty"`
	PasswordHash string             `bson:"password_hash"`
	CreatedAt    time.Time          `bson:"created_at"`
}

// Profile is the caller-facing view of a user. It never carries the
// password hash.
type Profile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Mobile    string    `json:"mobile"`
	Country   string    `json:"country"`
	State     string    `json:"state,omitempty"`
	City      string    `json:"city"`
	Village   string    `json:"village,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile strips the security fields from a stored user.
func (u User) Profile() Profile {
	return Profile{
		ID:        u.ID.Hex(),
		Name:      u.Name,
		Email:     u.Email,
		Mobile:    u.Mobile,
		Country:   u.Country,
		State:     u.State,
		City:      u.City,
		Village:   u.Village,
		CreatedAt: u.CreatedAt,
	}
}

// SignUpInput carries a registration request into the service.
type SignUpInput struct {
	Name     string
	Email    string
	Mobile   string
	Country  string
	State    string
	City     string
	Village  string
	Password string
}

// Login identifier kinds a caller may declare. An empty kind means the
// identifier is matched against both the email and mobile fields.
const (
	LoginTypeEmail  = "email"
	LoginTypeMobile = "mobile"
)

// LoginInput carries an authentication request into the service.
type LoginInput struct {
	Identifier string
	Password   string
	LoginType  string
}
