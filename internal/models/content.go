package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SEOContent is one generated result stored in MongoDB. GeneratedContent is
// the string-serialized structured object (or the malformed-output fallback),
// and UserID is always the resolved user id of the creator.
type SEOContent struct {
	ID               primitive.ObjectID `json:"id"               bson:"_id,omitempty"`
	UserID           string             `json:"userId"           bson:"user_id"`
	Keyword          string             `json:"keyword"          bson:"keyword"`
	URLs             string             `json:"urls"             bson:"urls"`
	GeneratedContent string             `json:"generatedContent" bson:"generated_content"`
	CreatedAt        time.Time          `json:"createdAt"        bson:"created_at"`
}

// GenerateRequest is the JSON body for POST /api/generate. Prompt is
// optional; when empty the server builds one from keyword, urls and feature.
type GenerateRequest struct {
	Prompt  string `json:"prompt"`
	Keyword string `json:"keyword" validate:"required"`
	URLs    string `json:"urls"`
	Feature string `json:"feature"`
}
