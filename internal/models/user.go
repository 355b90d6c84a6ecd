package models

// Пароль хранится как есть, username не уникален — так было в исходном приложении.
type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	Username string `gorm:"type:text"`
	Password string `gorm:"type:text"`
}

func (User) TableName() string { return "users" }
