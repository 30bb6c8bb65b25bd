package domain

import "time"

// Institution is an educational institution record.
type Institution struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Address   string    `json:"address" bson:"address"`
	City      string    `json:"city" bson:"city"`
	State     string    `json:"state" bson:"state"`
	Country   string    `json:"country" bson:"country"`
	ZipCode   string    `json:"zip_code" bson:"zip_code"`
	Phone     string    `json:"phone" bson:"phone"`
	Website   string    `json:"website,omitempty" bson:"website,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
