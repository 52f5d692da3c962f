package user

import "time"

// User is a login account. Passwords are stored and compared verbatim; this
// mirrors the system being replaced and is an accepted constraint, not an
// oversight. EmployeeID is a weak reference used for lookups only.
type User struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	Username   string    `json:"username" gorm:"not null"`
	Password   string    `json:"-" gorm:"not null"`
	Role       string    `json:"role" gorm:"default:employee"`
	Status     string    `json:"status" gorm:"default:Active"`
	EmployeeID *string   `json:"employee_id,omitempty" gorm:"column:employee_id"`
	CreatedAt  time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}
