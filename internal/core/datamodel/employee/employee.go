package employee

import "time"

// Employee is the master roster record. Codes are unique case-insensitively;
// JoinDate is kept as a plain YYYY-MM-DD string, matching how every other
// date in the system is keyed.
type Employee struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Code      string    `json:"code" gorm:"uniqueIndex;not null"`
	Name      string    `json:"name"`
	JoinDate  string    `json:"join_date" gorm:"column:join_date"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}
