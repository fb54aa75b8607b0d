package api

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// pathID reads the :id path parameter. A malformed id cannot name a stored
// document, so it is reported as notFound.
func pathID(c *gin.Context, notFound error) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(c.Param("id")))
	if err != nil {
		return primitive.NilObjectID, notFound
	}
	return id, nil
}

// statusRequest is the body of every PATCH that only changes a status.
type statusRequest struct {
	Status string `json:"status"`
}
