package models

import (
	"time"
)

// QR content types. The type decides both the string encoded into the symbol
// and how the redirect endpoint dispatches.
const (
	TypeURL   = "url"
	TypeText  = "text"
	TypeEmail = "email"
	TypePhone = "phone"
	TypeSMS   = "sms"
	TypeWifi  = "wifi"
	TypeVCard = "vcard"
)

// Styling defaults applied when a create request leaves options unset.
const (
	DefaultSize            = 400
	DefaultMargin          = 2
	DefaultForeground      = "#000000"
	DefaultBackground      = "#ffffff"
	DefaultErrorCorrection = "M"
	DefaultStyle           = "square"
)

type QrCode struct {
	ID        string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string `json:"userId" gorm:"index;not null;type:varchar(36)"`
	Title     string `json:"title"`
	Type      string `json:"type" gorm:"not null"`
	Content   string `json:"content" gorm:"not null"`
	ShortCode string `json:"shortCode" gorm:"uniqueIndex;size:16;not null"`

	// Customization options
	ForegroundColor string `json:"foregroundColor" gorm:"default:'#000000'"`
	BackgroundColor string `json:"backgroundColor" gorm:"default:'#ffffff'"`
	Size            int    `json:"size" gorm:"default:400"`
	Margin          int    `json:"margin" gorm:"default:2"`
	ErrorCorrection string `json:"errorCorrection" gorm:"default:'M'"` // L, M, Q, H
	Style           string `json:"style" gorm:"default:'square'"`      // square, rounded, dots
	LogoURL         string `json:"logoUrl"`

	ClickCount int64     `json:"clickCount" gorm:"default:0"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type CreateQrCodeRequest struct {
	Title           string `json:"title"`
	Type            string `json:"type" validate:"required,oneof=url text email phone sms wifi vcard"`
	Content         string `json:"content" validate:"required"`
	Size            int    `json:"size" validate:"omitempty,min=64,max=2048"`
	Margin          int    `json:"margin" validate:"omitempty,min=0,max=16"`
	ForegroundColor string `json:"foregroundColor" validate:"omitempty,qrcolor"`
	BackgroundColor string `json:"backgroundColor" validate:"omitempty,qrcolor"`
	ErrorCorrection string `json:"errorCorrection" validate:"omitempty,oneof=L M Q H"`
	Style           string `json:"style" validate:"omitempty,oneof=square rounded dots"`
	LogoURL         string `json:"logoUrl" validate:"omitempty,url"`
}

// ApplyDefaults fills unset styling options with the documented defaults.
func (r *CreateQrCodeRequest) ApplyDefaults() {
	if r.Size == 0 {
		r.Size = DefaultSize
	}
	if r.Margin == 0 {
		r.Margin = DefaultMargin
	}
	if r.ForegroundColor == "" {
		r.ForegroundColor = DefaultForeground
	}
	if r.BackgroundColor == "" {
		r.BackgroundColor = DefaultBackground
	}
	if r.ErrorCorrection == "" {
		r.ErrorCorrection = DefaultErrorCorrection
	}
	if r.Style == "" {
		r.Style = DefaultStyle
	}
}
