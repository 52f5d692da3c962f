package shifttype

// ShiftType is a configurable shift-code definition. Color is an opaque
// presentation tag the backend never interprets. Position preserves the
// operator's ordering across replace-all writes.
type ShiftType struct {
	Code     string `json:"code" gorm:"primaryKey"`
	Label    string `json:"label"`
	Color    string `json:"color"`
	Position int    `json:"-" gorm:"column:position"`
}

func (ShiftType) TableName() string {
	return "shift_types"
}
