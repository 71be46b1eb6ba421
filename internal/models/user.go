package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is one document of the users collection. Employees and patients share
// it: employees carry username/email, patients carry fullName/birthday/address.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username,omitempty" json:"username,omitempty"`
	Email        string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	FullName     string             `bson:"fullName,omitempty" json:"fullName,omitempty"`
	Birthday     string             `bson:"birthday,omitempty" json:"birthday,omitempty"`
	Address      string             `bson:"address,omitempty" json:"address,omitempty"`
	Note         string             `bson:"note,omitempty" json:"note,omitempty"`
	Name         string             `bson:"name,omitempty" json:"name,omitempty"`
	Mobile       string             `bson:"mobile,omitempty" json:"mobile,omitempty"`
	Photo        string             `bson:"photo,omitempty" json:"photo,omitempty"`
	UserType     UserType           `bson:"userType" json:"userType"`
	Password     string             `bson:"password" json:"-"` // bcrypt hash, never serialized
	ActiveStatus bool               `bson:"activeStatus" json:"activeStatus"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// UserType discriminates what kind of account a record is.
type UserType string

const (
	UserTypeAdmin          UserType = "admin"
	UserTypeUser           UserType = "user"
	UserTypeDoctor         UserType = "doctor"
	UserTypeAdministrative UserType = "administrative"
	UserTypeSales          UserType = "sales"
)

// UserTypes lists every accepted user type in display order.
var UserTypes = []UserType{
	UserTypeAdmin,
	UserTypeUser,
	UserTypeDoctor,
	UserTypeAdministrative,
	UserTypeSales,
}

// Valid reports whether t is one of the enumerated user types.
func (t UserType) Valid() bool {
	for _, v := range UserTypes {
		if v == t {
			return true
		}
	}
	return false
}
