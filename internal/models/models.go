package models

import "time"

// Service is a single service offering shown on the marketing site.
// Stored in the "service" collection.
type Service struct {
	Title         string   `json:"title" bson:"title" validate:"required"`
	Summary       string   `json:"summary" bson:"summary" validate:"required"`
	Icon          string   `json:"icon,omitempty" bson:"icon,omitempty"`
	StartingPrice *float64 `json:"starting_price,omitempty" bson:"starting_price,omitempty" validate:"omitempty,gte=0"`
	Tags          []string `json:"tags" bson:"tags"`
}

// BlogPost is stored in the "blogpost" collection. Slug is intended to be
// unique but nothing enforces it.
type BlogPost struct {
	Title      string   `json:"title" bson:"title" validate:"required"`
	Slug       string   `json:"slug" bson:"slug" validate:"required"`
	Excerpt    string   `json:"excerpt" bson:"excerpt" validate:"required"`
	Content    string   `json:"content" bson:"content" validate:"required"`
	Author     string   `json:"author" bson:"author"`
	CoverImage string   `json:"cover_image,omitempty" bson:"cover_image,omitempty" validate:"omitempty,url"`
	Tags       []string `json:"tags" bson:"tags"`
}

// ContactMessage is submitted through the public contact form and stored in
// the "contactmessage" collection. It is write-only: nothing in this service
// reads it back.
type ContactMessage struct {
	Name      string     `json:"name" bson:"name" validate:"required"`
	Email     string     `json:"email" bson:"email" validate:"required,email"`
	Phone     string     `json:"phone,omitempty" bson:"phone,omitempty"`
	Subject   string     `json:"subject" bson:"subject" validate:"required"`
	Message   string     `json:"message" bson:"message" validate:"required"`
	Source    string     `json:"source,omitempty" bson:"source,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty" bson:"created_at,omitempty"`
}

// User and Product are declared collection schemas with no endpoint behind
// them yet.

type User struct {
	Name     string `json:"name" bson:"name" validate:"required"`
	Email    string `json:"email" bson:"email" validate:"required,email"`
	Address  string `json:"address,omitempty" bson:"address,omitempty"`
	Age      *int   `json:"age,omitempty" bson:"age,omitempty" validate:"omitempty,gte=0,lte=120"`
	IsActive bool   `json:"is_active" bson:"is_active"`
}

type Product struct {
	Title       string  `json:"title" bson:"title" validate:"required"`
	Description string  `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64 `json:"price" bson:"price" validate:"gte=0"`
	Category    string  `json:"category" bson:"category" validate:"required"`
	InStock     bool    `json:"in_stock" bson:"in_stock"`
}
