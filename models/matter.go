package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Matter holds the structure for the matter collection in mongo. A matter is
// a legal case/file being handled for an instructing firm of attorneys.
type Matter struct {
	ID                         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID                     string             `json:"userId" bson:"userId"`
	Name                       string             `json:"name" bson:"name"`
	Description                string             `json:"description" bson:"description"`
	AttorneyReference          string             `json:"attorneyReference" bson:"attorneyReference"`
	AssignedFirmID             string             `json:"assignedAttorneysFirmId" bson:"assignedAttorneysFirmId"`
	AssignedContactPersonNames []string           `json:"assignedContactPersonNames" bson:"assignedContactPersonNames"`
	CreatedAt                  time.Time          `json:"createdAt" bson:"createdAt"`
}
