package models

// The landing page types below describe the public marketing demo. They are
// deliberately separate from Consultant and Service.

type LandingConsultant struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Expertise string   `json:"expertise"`
	Location  string   `json:"location"`
	Position  Location `json:"position"`
	Rating    float64  `json:"rating"`
	Reviews   int      `json:"reviews"`
	Image     string   `json:"image"`
	Languages []string `json:"languages"`
}

type MarketItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Popularity  int     `json:"popularity"`
	Image       string  `json:"image"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// BookingRequest is the landing page booking form.
type BookingRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"required"`
	ConsultantID string `json:"consultant_id" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
	Message      string `json:"message"`
}

type BookingReceipt struct {
	Submitted bool `json:"submitted"`
}
