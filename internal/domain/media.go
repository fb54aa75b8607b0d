package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MediaFolder groups uploaded images by what they illustrate.
type MediaFolder string

const (
	MediaPrograms     MediaFolder = "programs"
	MediaTestimonials MediaFolder = "testimonials"
)

// MediaUpload records an image upload URL handed out to an admin.
// The file itself lives in object storage under ObjectKey.
type MediaUpload struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Folder      MediaFolder        `bson:"folder" json:"folder"`
	ObjectKey   string             `bson:"objectKey" json:"objectKey"`
	ContentType string             `bson:"contentType" json:"contentType"`
	PublicURL   string             `bson:"publicUrl" json:"publicUrl"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
