package models

import "time"

type ServiceType string

const (
	ServiceAppointment  ServiceType = "appointment"
	ServiceSubscription ServiceType = "subscription"
	ServiceEvent        ServiceType = "event"
	ServiceTest         ServiceType = "test"
)

const (
	DeliveryOnline  = "online"
	DeliveryOffline = "offline"

	TestOnline  = "online"
	TestOffline = "offline"
)

// MaxSuggestions caps the call-to-action blocks on a service.
const MaxSuggestions = 5

// Suggestion is a call-to-action block shown with a service.
type Suggestion struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ButtonText  string `json:"button_text,omitempty"`
	ButtonLink  string `json:"button_link,omitempty"`
}

// Service is the stored record. Variant fields are flat on the wire and only
// the group selected by ServiceType is populated.
type Service struct {
	ID           int64       `json:"id,omitempty"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	DeliveryMode string      `json:"delivery_mode"`
	ServiceType  ServiceType `json:"service_type"`

	AppointmentType string `json:"appointment_type,omitempty"`

	TestType      string `json:"test_type,omitempty"`
	RedirectURL   string `json:"redirect_url,omitempty"`
	CenterAddress string `json:"center_address,omitempty"`

	Price        float64 `json:"price,omitempty"`
	BillingCycle string  `json:"billing_cycle,omitempty"`
	StartDate    string  `json:"start_date,omitempty"`
	EndDate      string  `json:"end_date,omitempty"`

	EventDate      string `json:"event_date,omitempty"`
	EventStartTime string `json:"event_start_time,omitempty"`
	EventEndTime   string `json:"event_end_time,omitempty"`
	EventImage     string `json:"event_image,omitempty"`
	MeetLink       string `json:"meet_link,omitempty"`

	ConsultantIDs  []int64      `json:"consultant_ids"`
	CategoryIDs    []int64      `json:"category_ids"`
	SubcategoryIDs []int64      `json:"subcategory_ids"`
	Suggestions    []Suggestion `json:"suggestions"`
}

type AppointmentDetails struct {
	AppointmentType string `json:"appointment_type"`
}

type SubscriptionDetails struct {
	Price        float64 `json:"price"`
	BillingCycle string  `json:"billing_cycle"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
}

type EventDetails struct {
	Date      string      `json:"event_date"`
	StartTime string      `json:"event_start_time"`
	EndTime   string      `json:"event_end_time"`
	Image     string      `json:"event_image"`
	MeetLink  string      `json:"meet_link"`
	ImageFile *Attachment `json:"-"`
}

type TestDetails struct {
	TestType      string `json:"test_type"`
	RedirectURL   string `json:"redirect_url"`
	CenterAddress string `json:"center_address"`
}

// ServiceForm is the authoring state of a service. Every variant group is kept
// so switching the type back and forth loses nothing; only the active group is
// validated and sent.
type ServiceForm struct {
	ID           int64       `json:"id,omitempty"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	DeliveryMode string      `json:"delivery_mode"`
	Type         ServiceType `json:"service_type"`

	Appointment  AppointmentDetails  `json:"appointment"`
	Subscription SubscriptionDetails `json:"subscription"`
	Event        EventDetails        `json:"event"`
	Test         TestDetails         `json:"test"`

	ConsultantIDs  []int64      `json:"consultant_ids"`
	CategoryIDs    []int64      `json:"category_ids"`
	SubcategoryIDs []int64      `json:"subcategory_ids"`
	Suggestions    []Suggestion `json:"suggestions"`
}

// NewServiceForm returns the create defaults.
func NewServiceForm() ServiceForm {
	return ServiceForm{
		DeliveryMode: DeliveryOnline,
		Type:         ServiceAppointment,
		Test:         TestDetails{TestType: TestOnline},
	}
}

// ServiceFormFromRecord seeds an edit form, filling the group of the stored type.
func ServiceFormFromRecord(s Service) ServiceForm {
	f := NewServiceForm()
	f.ID = s.ID
	f.Name = s.Name
	f.Description = s.Description
	if s.DeliveryMode != "" {
		f.DeliveryMode = s.DeliveryMode
	}
	f.Type = s.ServiceType
	f.ConsultantIDs = s.ConsultantIDs
	f.CategoryIDs = s.CategoryIDs
	f.SubcategoryIDs = s.SubcategoryIDs
	f.Suggestions = s.Suggestions

	switch s.ServiceType {
	case ServiceAppointment:
		f.Appointment = AppointmentDetails{AppointmentType: s.AppointmentType}
	case ServiceSubscription:
		f.Subscription = SubscriptionDetails{Price: s.Price, BillingCycle: s.BillingCycle, StartDate: s.StartDate, EndDate: s.EndDate}
	case ServiceEvent:
		f.Event = EventDetails{Date: s.EventDate, StartTime: s.EventStartTime, EndTime: s.EventEndTime, Image: s.EventImage, MeetLink: s.MeetLink}
	case ServiceTest:
		f.Test = TestDetails{TestType: s.TestType, RedirectURL: s.RedirectURL, CenterAddress: s.CenterAddress}
	}
	return f
}

// SetType switches the discriminator without clearing any group.
func (f *ServiceForm) SetType(t ServiceType) {
	f.Type = t
}

// AddSuggestion appends s unless the cap is reached. It reports whether s was added.
func (f *ServiceForm) AddSuggestion(s Suggestion) bool {
	if len(f.Suggestions) >= MaxSuggestions {
		return false
	}
	f.Suggestions = Append(f.Suggestions, s)
	return true
}

func (f *ServiceForm) RemoveSuggestion(i int) {
	f.Suggestions = RemoveAt(f.Suggestions, i)
}

func (f *ServiceForm) SetSuggestion(i int, s Suggestion) {
	f.Suggestions = SetAt(f.Suggestions, i, s)
}

// CanAddSuggestion tells the UI whether to offer "add suggestion".
func (f ServiceForm) CanAddSuggestion() bool {
	return len(f.Suggestions) < MaxSuggestions
}

func (f ServiceForm) Validate() error {
	if f.Name == "" {
		return required("name")
	}
	if f.DeliveryMode != DeliveryOnline && f.DeliveryMode != DeliveryOffline {
		return invalid("delivery_mode", "delivery_mode must be online or offline")
	}
	if len(f.Suggestions) > MaxSuggestions {
		return invalid("suggestions", "at most 5 suggestions are allowed")
	}

	switch f.Type {
	case ServiceAppointment:
		if f.Appointment.AppointmentType == "" {
			return required("appointment_type")
		}
		if len(f.ConsultantIDs) == 0 {
			return invalid("consultant_ids", "select at least one consultant")
		}
	case ServiceSubscription:
		if f.Subscription.Price <= 0 {
			return invalid("price", "price must be greater than zero")
		}
		if f.Subscription.StartDate == "" {
			return required("start_date")
		}
		if f.Subscription.EndDate == "" {
			return required("end_date")
		}
		start, errStart := time.Parse("2006-01-02", f.Subscription.StartDate)
		end, errEnd := time.Parse("2006-01-02", f.Subscription.EndDate)
		if errStart == nil && errEnd == nil && end.Before(start) {
			return invalid("end_date", "end_date must not be before start_date")
		}
	case ServiceEvent:
		if f.Event.Date == "" {
			return required("event_date")
		}
		if f.Event.StartTime == "" {
			return required("event_start_time")
		}
	case ServiceTest:
		switch f.Test.TestType {
		case TestOnline:
			if f.Test.RedirectURL == "" {
				return required("redirect_url")
			}
		case TestOffline:
			if f.Test.CenterAddress == "" {
				return required("center_address")
			}
		default:
			return invalid("test_type", "test_type must be online or offline")
		}
	default:
		return invalid("service_type", "service_type must be appointment, subscription, event or test")
	}
	return nil
}

// Payload flattens the common fields and the active group into the stored record.
func (f ServiceForm) Payload() Service {
	s := Service{
		ID:             f.ID,
		Name:           f.Name,
		Description:    f.Description,
		DeliveryMode:   f.DeliveryMode,
		ServiceType:    f.Type,
		ConsultantIDs:  nonNilIDs(f.ConsultantIDs),
		CategoryIDs:    nonNilIDs(f.CategoryIDs),
		SubcategoryIDs: nonNilIDs(f.SubcategoryIDs),
		Suggestions:    f.Suggestions,
	}
	if s.Suggestions == nil {
		s.Suggestions = []Suggestion{}
	}

	switch f.Type {
	case ServiceAppointment:
		s.AppointmentType = f.Appointment.AppointmentType
	case ServiceSubscription:
		s.Price = f.Subscription.Price
		s.BillingCycle = f.Subscription.BillingCycle
		s.StartDate = f.Subscription.StartDate
		s.EndDate = f.Subscription.EndDate
	case ServiceEvent:
		s.EventDate = f.Event.Date
		s.EventStartTime = f.Event.StartTime
		s.EventEndTime = f.Event.EndTime
		s.EventImage = f.Event.Image
		s.MeetLink = f.Event.MeetLink
	case ServiceTest:
		s.TestType = f.Test.TestType
		if f.Test.TestType == TestOnline {
			s.RedirectURL = f.Test.RedirectURL
		} else {
			s.CenterAddress = f.Test.CenterAddress
		}
	}
	return s
}

// Files returns the event image when the event group is active.
func (f ServiceForm) Files() []Attachment {
	if f.Type != ServiceEvent {
		return nil
	}
	return Attachments(f.Event.ImageFile)
}

func nonNilIDs(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}
