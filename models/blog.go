package models

// Blog categories accepted by the backend.
var BlogCategories = []string{
	"Mental Health",
	"Education",
	"Wellness",
	"Parenting",
	"Career",
}

type Blog struct {
	ID          int64  `json:"id,omitempty"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	Author      string `json:"author,omitempty"`
	// Status is one of the backend's many lifecycle values and is passed through as is.
	Status string `json:"status,omitempty"`
}

func (b Blog) Validate() error {
	if err := CheckBinding(b); err != nil {
		return err
	}
	for _, c := range BlogCategories {
		if c == b.Category {
			return nil
		}
	}
	return invalid("category", "unknown blog category")
}
