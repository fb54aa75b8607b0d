package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServiceType is the kind of session a booking is for.
type ServiceType string

const (
	ServiceEMS          ServiceType = "ems"
	ServiceCrossFit     ServiceType = "crossfit"
	ServicePilates      ServiceType = "pilates"
	ServiceConsultation ServiceType = "consultation"
)

var serviceNames = map[ServiceType]string{
	ServiceEMS:          "EMS Training",
	ServiceCrossFit:     "CrossFit Training",
	ServicePilates:      "Pilates",
	ServiceConsultation: "Free Consultation",
}

func (s ServiceType) IsValid() bool {
	_, ok := serviceNames[s]
	return ok
}

// DisplayName is the human label used in emails.
func (s ServiceType) DisplayName() string {
	if name, ok := serviceNames[s]; ok {
		return name
	}
	return string(s)
}

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// Booking is a session request. Date holds local midnight of the booked day.
type Booking struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Service   ServiceType        `bson:"service" json:"service"`
	Date      time.Time          `bson:"date" json:"date"`
	Time      string             `bson:"time" json:"time"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone" json:"phone"`
	Notes     string             `bson:"notes" json:"notes"`
	Status    BookingStatus      `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// BookingFilter narrows a booking listing. Zero values mean no constraint.
type BookingFilter struct {
	Status  BookingStatus
	Service ServiceType
	// DayStart/DayEnd bound Date inclusively when DayStart is non-zero.
	DayStart time.Time
	DayEnd   time.Time
}
