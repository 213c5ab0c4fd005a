package models

type Product struct {
	ID    uint   `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name  string `gorm:"not null"                  json:"name"`
	Price int    `gorm:"not null"                  json:"price"`
	Image string `gorm:"not null"                  json:"image"`
}

type Member struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Email    string `gorm:"unique;not null"          json:"email"`
	Password string `gorm:"not null"                 json:"-"`
}

type CartItem struct {
	ID        uint `gorm:"primaryKey;autoIncrement"                json:"id"`
	MemberID  uint `gorm:"uniqueIndex:idx_member_product;not null" json:"member_id"`
	ProductID uint `gorm:"uniqueIndex:idx_member_product;not null" json:"product_id"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
