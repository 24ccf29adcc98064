package models

// Curator defines the curator model based on the 'curators' table.
// Students reference curators by FullName, so FullName carries a unique
// constraint alongside TelegramID.
type Curator struct {
	ID         int64   `json:"id" db:"id" example:"1"`
	TelegramID string  `json:"telegramId" db:"telegram_id" example:"88214412"`
	FullName   string  `json:"fullName" db:"full_name" example:"Petrov A.V."`
	GroupLink  *string `json:"groupLink,omitempty" db:"group_link"` // Telegram group invite link
}
