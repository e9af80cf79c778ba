// internal/models/part.go
package models

import "time"

// Part is a stocked spare part in the workshop inventory.
type Part struct {
	PartID        string     `bson:"partID" json:"partID"`
	Name          string     `bson:"name" json:"name"`
	PartNumber    string     `bson:"partNumber" json:"partNumber"`
	Category      string     `bson:"category" json:"category"`
	Quantity      int        `bson:"quantity" json:"quantity"`
	MinQuantity   int        `bson:"minQuantity" json:"minQuantity"`
	UnitCost      float64    `bson:"unitCost" json:"unitCost"`
	Supplier      string     `bson:"supplier,omitempty" json:"supplier"`
	Location      string     `bson:"location,omitempty" json:"location"`
	LastRestocked *time.Time `bson:"lastRestocked,omitempty" json:"lastRestocked,omitempty"`
	UsedIn        []string   `bson:"usedIn,omitempty" json:"usedIn"`
	CreatedAt     time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// LowStock reports whether the part has fallen below its reorder point.
func (p *Part) LowStock() bool {
	return p.Quantity < p.MinQuantity
}
