package dto

type ClientRowDTO struct {
	ClientID         uint    `json:"client_id" yaml:"client_id"`
	ClientName       string  `json:"client_name" yaml:"client_name"`
	ClientSecondname string  `json:"client_secondname" yaml:"client_secondname"`
	ClientEmail      string  `json:"client_email" yaml:"client_email"`
	Phone            *string `json:"phone" yaml:"phone"`
}

type PhoneDTO struct {
	ID    uint   `json:"id" yaml:"id"`
	Phone string `json:"phone" yaml:"phone"`
}
