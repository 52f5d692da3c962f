package shift

// Shift assigns one shift-type code to one employee for one day. The date is
// a literal YYYY-MM-DD string key; spreadsheet headers flow through here
// unvalidated, so a malformed header becomes a literal key.
type Shift struct {
	EmployeeID string `json:"employeeId" gorm:"column:employee_id;primaryKey"`
	Date       string `json:"date" gorm:"primaryKey"`
	Type       string `json:"type" gorm:"not null"`
}

func (Shift) TableName() string {
	return "shifts"
}
