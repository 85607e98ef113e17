package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Role string

const (
	RoleNone  Role = ""
	RoleAdmin Role = "admin"
)

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email" binding:"required"`
	Password string             `bson:"password,omitempty" json:"-"` // bcrypt hash, only for /auth accounts
	Role     Role               `bson:"role,omitempty" json:"role,omitempty"`
	Phone    string             `bson:"phone,omitempty" json:"phone,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
