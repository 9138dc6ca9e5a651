package models

// ClientRow is one row of the client/phone left join. Phone is nil for a
// client without phones.
type ClientRow struct {
	ClientID         uint    `gorm:"column:client_id"`
	ClientName       string  `gorm:"column:client_name"`
	ClientSecondname string  `gorm:"column:client_secondname"`
	ClientEmail      string  `gorm:"column:client_email"`
	Phone            *string `gorm:"column:phone"`
}
