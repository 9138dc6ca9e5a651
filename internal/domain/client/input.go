package client

import "fmt"

type NewClient struct {
	Name       string `json:"client_name" validate:"required,max=40"`
	Secondname string `json:"client_secondname" validate:"required,max=60"`
	Email      string `json:"client_email" validate:"required,max=100"`
}

// Validate applies the column constraints of client_info.
func (n NewClient) Validate() error {
	if err := validate.Struct(&n); err != nil {
		return fmt.Errorf("%w: %v", ErrConstraintViolation, err)
	}
	return nil
}

// ValidatePhone applies the column constraints of client_phone.phone.
func ValidatePhone(phone string) error {
	if err := validate.Var(FieldPhone.Column(), phone, rules[FieldPhone]); err != nil {
		return fmt.Errorf("%w: %v", ErrConstraintViolation, err)
	}
	return nil
}
