package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Country is reference data: one document per country, no embedded
// structure. It is the simple-entity case the generic repository serves.
type Country struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CountryCode string             `bson:"country_code" json:"country_code"`
	CountryName string             `bson:"country_name" json:"country_name"`
}

// GetID returns the document id.
func (c *Country) GetID() primitive.ObjectID { return c.ID }

// SetID sets the document id.
func (c *Country) SetID(id primitive.ObjectID) { c.ID = id }
