package repository

// TxDataset is the durable key-value row holding the whole account->records
// JSON object under a single key. Details inside the payload are already
// codec-normalized before they reach this table.
type TxDataset struct {
	Key     string `gorm:"primaryKey;size:64"`
	Payload string `gorm:"type:text;not null"`
}

type User struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}
