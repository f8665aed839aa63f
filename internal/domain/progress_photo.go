package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProgressPhoto stores metadata about a body-progress photo uploaded by a
// user. The actual file resides in object storage under ObjectKey.
type ProgressPhoto struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"userId" json:"userId"`
	ObjectKey   string             `bson:"objectKey" json:"-"` // Key in the storage bucket - internal use
	FileName    string             `bson:"fileName" json:"fileName"`
	ContentType string             `bson:"contentType" json:"contentType"` // MIME type (e.g., "image/jpeg")
	UploadedAt  time.Time          `bson:"uploadedAt" json:"uploadedAt"`
}
