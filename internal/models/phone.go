package models

// Phone belongs to exactly one client. The foreign key lives on
// Client.Phones.
type Phone struct {
	ID       uint   `gorm:"column:id;primaryKey" json:"id"`
	ClientID uint   `gorm:"column:client_id;not null;index" json:"client_id"`
	Phone    string `gorm:"column:phone;size:15" json:"phone"`
}

func (Phone) TableName() string {
	return "client_phone"
}
