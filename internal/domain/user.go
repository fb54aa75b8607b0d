package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role type to distinguish between user roles
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleMember  Role = "member"
	RoleTrainer Role = "trainer"
)

type UserStatus string

const (
	UserActive    UserStatus = "active"
	UserInactive  UserStatus = "inactive"
	UserSuspended UserStatus = "suspended"
)

type MembershipType string

const (
	MembershipBasic   MembershipType = "basic"
	MembershipPremium MembershipType = "premium"
	MembershipVIP     MembershipType = "vip"
)

// User is a studio member or staff account.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`    // unique
	PasswordHash   string             `bson:"passwordHash" json:"-"` // Never expose this via JSON
	Role           Role               `bson:"role" json:"role"`
	Phone          string             `bson:"phone,omitempty" json:"phone,omitempty"`
	JoinDate       time.Time          `bson:"joinDate" json:"joinDate"`
	Status         UserStatus         `bson:"status" json:"status"`
	MembershipType MembershipType     `bson:"membershipType,omitempty" json:"membershipType,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (u *User) IsActive() bool {
	return u.Status == UserActive
}

type UserFilter struct {
	Role   Role
	Status UserStatus
}

// UserPatch lists the profile fields that may change after registration.
// The password hash is deliberately absent.
type UserPatch struct {
	Name           *string
	Phone          *string
	MembershipType *MembershipType
	Status         *UserStatus
}
