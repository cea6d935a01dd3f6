package domain

import "time"

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionInactive SubscriptionStatus = "inactive"
)

// SubscriptionRecord is keyed by email. Last write wins.
type SubscriptionRecord struct {
	Email        string
	Subscription SubscriptionStatus
	Updated      time.Time
}
