// Package models defines the core document structures for foods, orders,
// and session identities.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// AddedBy identifies the user who created a food item.
type AddedBy struct {
	// Name is the display name of the owner.
	Name string `bson:"name" json:"name"`
	// Email is the owner's email, matched against the session identity
	// for ownership-scoped listings.
	Email string `bson:"email" json:"email"`
}

// Anonymous owner values substituted when a food item is created
// without an addedBy identity.
const (
	AnonymousName  = "Anonymous"
	AnonymousEmail = "N/A"
)

// Food represents a catalog item stored in the foods collection.
type Food struct {
	// ID is the store-generated identifier.
	ID primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	// Name is the display name of the dish.
	Name string `bson:"name" json:"name"`
	// Image is a URL to the item's picture.
	Image string `bson:"image" json:"image"`
	// Description is free-form text about the dish.
	Description string `bson:"description" json:"description"`
	// Price is the unit price.
	Price float64 `bson:"price" json:"price"`
	// Quantity is the number of portions available.
	Quantity int `bson:"quantity" json:"quantity"`
	// PurchaseCount is the cumulative quantity ordered across all orders
	// referencing this item. Never written at creation time; documents
	// without the field read back as 0.
	PurchaseCount int `bson:"purchaseCount,omitempty" json:"purchaseCount"`
	// AddedBy is the owner identity, never empty on stored documents.
	AddedBy AddedBy `bson:"addedBy" json:"addedBy"`
}

// Identity is the payload embedded in a session token.
type Identity struct {
	// Name is the display name asserted at sign-in.
	Name string `json:"name,omitempty"`
	// Email is the identity claim used for every ownership decision.
	Email string `json:"email"`
}

// Order documents carry arbitrary caller-supplied fields and are handled as
// raw bson maps end to end. Only these keys have meaning to the server.
const (
	// OrderFieldFoodID references the ordered food item, required at creation.
	OrderFieldFoodID = "foodId"
	// OrderFieldEmail is the purchaser email, required at creation.
	OrderFieldEmail = "email"
	// OrderFieldQuantity is the ordered quantity, added to the food's purchase count.
	OrderFieldQuantity = "quantity"
)
