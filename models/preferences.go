package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DraftingPreferences holds the per-user drafting-type option list in the
// preferences collection. The list is user-extensible: choosing "Other" on a
// draft brief appends the custom type for future reuse.
type DraftingPreferences struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID          string             `json:"userId" bson:"userId"`
	DraftingOptions []string           `json:"draftingOptions" bson:"draftingOptions"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}
