package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Article statuses. New articles default to draft.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Article is a single news item in the articles collection.
// CreatedAt is a text timestamp captured when the article is inserted.
// Role is carried unread from the legacy schema; it is stored and
// returned as-is.
type Article struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Category    string             `bson:"category" json:"category"`
	Status      string             `bson:"status" json:"status"`
	Description string             `bson:"description" json:"description"`
	ImageURL    string             `bson:"imageUrl" json:"imageUrl"`
	CreatedAt   string             `bson:"createdAt" json:"createdAt"`
	Role        bool               `bson:"role" json:"role"`
}
