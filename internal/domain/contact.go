package domain

import "time"

// ContactStatus is the triage state of a contact message.
type ContactStatus string

const (
	ContactNew ContactStatus = "new"
)

// ContactTag is always present on messages from the website form.
const ContactTag = "website-contact"

// ContactMessage is a submission of the website contact form.
type ContactMessage struct {
	ID          string        `json:"id" bson:"id"`
	Name        string        `json:"name" bson:"name"`
	Email       string        `json:"email" bson:"email"`
	Company     string        `json:"company,omitempty" bson:"company,omitempty"`
	Phone       string        `json:"phone,omitempty" bson:"phone,omitempty"`
	ServiceType string        `json:"service_type,omitempty" bson:"service_type,omitempty"`
	Message     string        `json:"message" bson:"message"`
	Region      string        `json:"region" bson:"region"`
	SubmittedAt time.Time     `json:"submitted_at" bson:"submitted_at"`
	Status      ContactStatus `json:"status" bson:"status"`
	Tags        []string      `json:"tags" bson:"tags"`
	Source      string        `json:"source" bson:"source"`
}
