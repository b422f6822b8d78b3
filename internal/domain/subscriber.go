package domain

import "time"

// SubscriptionStatus enumerates the states a newsletter subscription can be in.
type SubscriptionStatus string

const (
	SubscriptionActive SubscriptionStatus = "active"
)

// SubscriptionPreferences records which newsletter streams a subscriber gets.
type SubscriptionPreferences struct {
	AIInsights       bool `json:"ai_insights" bson:"ai_insights"`
	IndustryUpdates  bool `json:"industry_updates" bson:"industry_updates"`
	EventInvitations bool `json:"event_invitations" bson:"event_invitations"`
}

// DefaultPreferences opts a new subscriber into every stream.
func DefaultPreferences() SubscriptionPreferences {
	return SubscriptionPreferences{AIInsights: true, IndustryUpdates: true, EventInvitations: true}
}

// NewsletterSubscription is one newsletter signup. Email is unique per collection.
type NewsletterSubscription struct {
	ID           string                  `json:"id" bson:"id"`
	Email        string                  `json:"email" bson:"email"`
	FirstName    string                  `json:"first_name,omitempty" bson:"first_name,omitempty"`
	LastName     string                  `json:"last_name,omitempty" bson:"last_name,omitempty"`
	Region       string                  `json:"region" bson:"region"`
	SubscribedAt time.Time               `json:"subscribed_at" bson:"subscribed_at"`
	Status       SubscriptionStatus      `json:"status" bson:"status"`
	Preferences  SubscriptionPreferences `json:"preferences" bson:"preferences"`
	Source       string                  `json:"source" bson:"source"`
}
