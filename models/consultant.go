package models

import (
	"regexp"
	"strings"

	"mindbloom/utils"
)

const (
	ConsultantOnline  = "online"
	ConsultantOffline = "offline"
)

// Location is a map coordinate.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Consultant is a practitioner as stored by the backend.
type Consultant struct {
	ID          int64    `json:"id,omitempty"`
	Username    string   `json:"username" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Phone       string   `json:"phone"`
	Image       string   `json:"image,omitempty"`
	Description string   `json:"description,omitempty"`
	Tagline     string   `json:"tagline,omitempty"`
	Location    Location `json:"location"`
	Address     string   `json:"address,omitempty"`
	Speciality  string   `json:"speciality,omitempty"`

	IDProofType   string `json:"id_proof_type,omitempty"`
	IDProofNumber string `json:"id_proof_number,omitempty"`
	IDProofFile   string `json:"id_proof_file,omitempty"`

	BankAccountName   string `json:"bank_account_name,omitempty"`
	BankAccountNumber string `json:"bank_account_number,omitempty"`
	BankIFSC          string `json:"bank_ifsc,omitempty"`
	BankName          string `json:"bank_name,omitempty"`

	Status         string  `json:"status"`
	Featured       bool    `json:"featured"`
	CategoryIDs    []int64 `json:"category_ids"`
	SubcategoryIDs []int64 `json:"subcategory_ids"`
}

// ConsultantForm is the edit state of a consultant. Taxonomy IDs are held as
// strings the way multi-select inputs hold them.
type ConsultantForm struct {
	Consultant
	CategoryIDs    []string    `json:"category_ids"`
	SubcategoryIDs []string    `json:"subcategory_ids"`
	Slots          []SlotDraft `json:"slots"`

	ImageFile     *Attachment `json:"-"`
	IDProofUpload *Attachment `json:"-"`
}

// ConsultantFormFromRecord seeds an edit form. File fields start empty since
// stored URLs cannot be turned back into uploads.
func ConsultantFormFromRecord(c Consultant, slots []SlotDraft) ConsultantForm {
	return ConsultantForm{
		Consultant:     c,
		CategoryIDs:    utils.IDsToStrings(c.CategoryIDs),
		SubcategoryIDs: utils.IDsToStrings(c.SubcategoryIDs),
		Slots:          slots,
	}
}

// EmailPattern builds the accepted address pattern for a mail domain.
func EmailPattern(domain string) *regexp.Regexp {
	return regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@` + regexp.QuoteMeta(domain) + `$`)
}

// EmailRule is the mail domain consultant addresses must belong to.
type EmailRule struct {
	Pattern *regexp.Regexp
	Message string
}

func NewEmailRule(domain string) EmailRule {
	return EmailRule{Pattern: EmailPattern(domain), Message: DomainMessage(domain)}
}

// DomainMessage is the rejection text for an address outside domain.
func DomainMessage(domain string) string {
	if strings.EqualFold(domain, "gmail.com") {
		return "Please use a Gmail address so meeting invites can be delivered"
	}
	return "Please use an address at " + domain + " so meeting invites can be delivered"
}

// Validate applies the consultant rules.
func (f ConsultantForm) Validate(email EmailRule) error {
	if err := CheckBinding(f); err != nil {
		return err
	}
	if !email.Pattern.MatchString(f.Email) {
		return invalid("email", email.Message)
	}
	if f.Status != "" && f.Status != ConsultantOnline && f.Status != ConsultantOffline {
		return invalid("status", "status must be online or offline")
	}
	return nil
}

// Payload converts the form back into the stored shape with numeric IDs.
func (f ConsultantForm) Payload() (Consultant, error) {
	c := f.Consultant
	var err error
	if c.CategoryIDs, err = utils.StringsToIDs(f.CategoryIDs); err != nil {
		return Consultant{}, invalid("category_ids", err.Error())
	}
	if c.SubcategoryIDs, err = utils.StringsToIDs(f.SubcategoryIDs); err != nil {
		return Consultant{}, invalid("subcategory_ids", err.Error())
	}
	if c.Status == "" {
		c.Status = ConsultantOffline
	}
	return c, nil
}

// Files returns the uploads attached to the form.
func (f ConsultantForm) Files() []Attachment {
	return Attachments(f.ImageFile, f.IDProofUpload)
}

// StatusToggle is the body of a status sub-resource call.
type StatusToggle struct {
	Status string `json:"status"`
}

// NextConsultantStatus flips online and offline.
func NextConsultantStatus(current string) string {
	if current == ConsultantOnline {
		return ConsultantOffline
	}
	return ConsultantOnline
}
