package models

// Client is a person record. Email is unique across clients; phones go
// away with their client.
type Client struct {
	ID         uint    `gorm:"column:client_id;primaryKey" json:"client_id"`
	Name       string  `gorm:"column:client_name;size:40;not null" json:"client_name"`
	Secondname string  `gorm:"column:client_secondname;size:60;not null" json:"client_secondname"`
	Email      string  `gorm:"column:client_email;size:100;uniqueIndex;not null" json:"client_email"`
	Phones     []Phone `gorm:"foreignKey:ClientID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Client) TableName() string {
	return "client_info"
}
