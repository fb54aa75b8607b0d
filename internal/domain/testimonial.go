package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestimonialProgram tags which program a testimonial talks about.
type TestimonialProgram string

const (
	TestimonialEMS      TestimonialProgram = "ems"
	TestimonialCrossFit TestimonialProgram = "crossfit"
	TestimonialPilates  TestimonialProgram = "pilates"
	TestimonialGeneral  TestimonialProgram = "general"
)

type Testimonial struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Role      string             `bson:"role" json:"role"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Rating    float64            `bson:"rating" json:"rating"`
	Text      string             `bson:"text" json:"text"`
	Program   TestimonialProgram `bson:"program,omitempty" json:"program,omitempty"`
	Approved  bool               `bson:"approved" json:"approved"`
	Featured  bool               `bson:"featured" json:"featured"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type TestimonialFilter struct {
	Approved *bool
	Featured *bool
	Program  TestimonialProgram
}

// TestimonialPatch holds the moderation flags an admin may change.
type TestimonialPatch struct {
	Approved *bool
	Featured *bool
}
