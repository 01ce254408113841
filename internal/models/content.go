package models

import (
	"encoding/json"
	"time"
)

// Content represents a bookmark-like record owned by a single user.
type Content struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	UserID string `json:"userId"`
	// Username of the owner, populated on list responses by a join.
	Username  string    `json:"username,omitempty"`
	CreatedAt time.Time `json:"createdAt"`

	// JSON string fields for DB storage
	LinksJSON string `json:"-"`
	TagsJSON  string `json:"-"`

	// Slice fields for API interaction
	Links []string `json:"links"`
	Tags  []string `json:"tags,omitempty"`
}

// PrepareForSave marshals the slice fields into their JSON strings for DB storage.
func (c *Content) PrepareForSave() {
	linksBytes, _ := json.Marshal(c.Links)
	c.LinksJSON = string(linksBytes)

	tagsBytes, _ := json.Marshal(c.Tags)
	c.TagsJSON = string(tagsBytes)
}

// PrepareForAPI unmarshals the JSON string fields into their slice fields for API responses.
func (c *Content) PrepareForAPI() {
	if c.LinksJSON != "" {
		json.Unmarshal([]byte(c.LinksJSON), &c.Links)
	}
	if c.TagsJSON != "" {
		json.Unmarshal([]byte(c.TagsJSON), &c.Tags)
	}
}
