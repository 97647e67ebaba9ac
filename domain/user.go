// Package domain contains core concepts of the messaging client.
// This file defines User entities and profile rules.
// No runtime, network, or UI logic should be added here.
package domain

import "time"

// AboutMaxLen is the maximum length of the profile "about" text.
const AboutMaxLen = 139

// User represents a participant of the messaging service.
// ID is the canonical identifier correlating presence, profile and
// message events for the same person.
type User struct {
	ID             string     `json:"_id"`
	Name           string     `json:"name,omitempty"`
	PhoneNumber    string     `json:"phoneNumber,omitempty"`
	ProfilePicture string     `json:"profilePicture,omitempty"`
	About          string     `json:"about,omitempty"`
	IsOnline       bool       `json:"isOnline,omitempty"`
	LastSeen       *time.Time `json:"lastSeen,omitempty"`
	Theme          string     `json:"theme,omitempty"`
	// SavedName is the per-viewer contact alias, if one was saved.
	SavedName string `json:"savedName,omitempty"`
}

// DisplayName resolves the name shown for a user: the viewer's saved
// alias wins, then the profile name, then the phone number.
func (u User) DisplayName() string {
	if u.SavedName != "" {
		return u.SavedName
	}
	if u.Name != "" {
		return u.Name
	}
	return u.PhoneNumber
}
