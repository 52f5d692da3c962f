package shifttype

import (
	shiftTypeModel "github.com/frahmantamala/shift-scheduling/internal/core/datamodel/shifttype"
)

type ShiftType struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// Defaults returns the factory's standard shift catalogue, used whenever no
// configuration has been stored yet. Colors are opaque presentation tags
// passed straight through to clients.
func Defaults() []ShiftType {
	return []ShiftType{
		{Code: "M", Label: "Mañana", Color: "bg-yellow-100 text-yellow-800 border-yellow-300"},
		{Code: "T", Label: "Tarde", Color: "bg-orange-100 text-orange-800 border-orange-300"},
		{Code: "N", Label: "Noche", Color: "bg-indigo-900 text-white border-indigo-700"},
		{Code: "L", Label: "Libre", Color: "bg-green-100 text-green-800 border-green-300"},
	}
}

func ToDataModel(t ShiftType, position int) *shiftTypeModel.ShiftType {
	return &shiftTypeModel.ShiftType{
		Code:     t.Code,
		Label:    t.Label,
		Color:    t.Color,
		Position: position,
	}
}

func FromDataModel(t *shiftTypeModel.ShiftType) ShiftType {
	return ShiftType{
		Code:  t.Code,
		Label: t.Label,
		Color: t.Color,
	}
}

type RepositoryAPI interface {
	GetAll() ([]*shiftTypeModel.ShiftType, error)
	ReplaceAll(types []*shiftTypeModel.ShiftType) error
}
