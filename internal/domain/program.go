package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Program is a training offer shown on the website. Slug is unique.
type Program struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title            string             `bson:"title" json:"title"`
	Slug             string             `bson:"slug" json:"slug"`
	Description      string             `bson:"description" json:"description"`
	ShortDescription string             `bson:"shortDescription" json:"shortDescription"`
	Features         []string           `bson:"features" json:"features"`
	Price            *float64           `bson:"price,omitempty" json:"price,omitempty"`
	Duration         string             `bson:"duration" json:"duration"`
	SessionsPerWeek  *int               `bson:"sessionsPerWeek,omitempty" json:"sessionsPerWeek,omitempty"`
	Image            string             `bson:"image,omitempty" json:"image,omitempty"`
	Icon             string             `bson:"icon" json:"icon"`
	IsFeatured       bool               `bson:"isFeatured" json:"isFeatured"`
	Available        bool               `bson:"available" json:"available"`
	Order            int                `bson:"order" json:"order"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type ProgramFilter struct {
	Available *bool
	Featured  *bool
}

// ProgramPatch carries the fields of a partial program update.
// Nil fields are left untouched.
type ProgramPatch struct {
	Title            *string
	Slug             *string
	Description      *string
	ShortDescription *string
	Features         *[]string
	Price            *float64
	Duration         *string
	SessionsPerWeek  *int
	Image            *string
	Icon             *string
	IsFeatured       *bool
	Available        *bool
	Order            *int
}
