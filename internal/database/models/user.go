package models

// UserRole represents the role of an account in the system
type UserRole string

const (
	UserRoleStudent UserRole = "STUDENT"
	UserRoleAdvisor UserRole = "ADVISOR"
	UserRoleAdmin   UserRole = "ADMIN"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleStudent, UserRoleAdvisor, UserRoleAdmin:
		return true
	}
	return false
}

// User represents a student, advisor or administrator account
type User struct {
	BaseModel
	Email     string   `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	FullName  string   `json:"full_name" gorm:"not null;size:200" validate:"required,max=200"`
	StudentNo string   `json:"student_no,omitempty" gorm:"size:20"`
	Role      UserRole `json:"role" gorm:"type:varchar(20);not null;default:'STUDENT'" validate:"required"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
