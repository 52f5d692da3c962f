package employee

import "errors"

type CreateEmployeeDTO struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	JoinDate string `json:"joinDate,omitempty"`
	Role     string `json:"role,omitempty"`
}

func (dto CreateEmployeeDTO) Validate() error {
	if dto.Code == "" {
		return errors.New("code is required")
	}
	if dto.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

type UpdateEmployeeDTO struct {
	Code     *string `json:"code,omitempty"`
	Name     *string `json:"name,omitempty"`
	JoinDate *string `json:"joinDate,omitempty"`
	Role     *string `json:"role,omitempty"`
}
