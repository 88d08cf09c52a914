package models

// Category is a service category from the catalog.
type Category struct {
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
	IsActive    bool   `bson:"isActive" json:"-"`
}
