package models

const (
	RoleConsultant = "consultant"
	RoleSuperAdmin = "superadmin"

	UserActive   = "active"
	UserInactive = "inactive"
)

// StaffUser is a back-office account.
type StaffUser struct {
	ID       int64  `json:"id,omitempty"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

// Validate checks a user form. Password is only required on create.
func (u StaffUser) Validate(creating bool) error {
	if err := CheckBinding(u); err != nil {
		return err
	}
	if creating && u.Password == "" {
		return required("password")
	}
	if u.Role != RoleConsultant && u.Role != RoleSuperAdmin {
		return invalid("role", "role must be consultant or superadmin")
	}
	if u.Status != "" && u.Status != UserActive && u.Status != UserInactive {
		return invalid("status", "status must be active or inactive")
	}
	return nil
}

// NextUserStatus flips active and inactive.
func NextUserStatus(current string) string {
	if current == UserActive {
		return UserInactive
	}
	return UserActive
}
