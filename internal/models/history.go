package models

// HistoryEntry — одна запись о предсказании. Внешнего ключа на users нет.
type HistoryEntry struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	UserID    uint   `gorm:"index"`
	InputData string `gorm:"type:text"`
	Result    string `gorm:"type:text"`
}

func (HistoryEntry) TableName() string { return "history" }
