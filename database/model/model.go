// Package model defines the database models for the runlog application.
package model

import "time"

type User struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"` // bcrypt hash, never plaintext
	Runs     []Run  `json:"-" gorm:"foreignKey:UserId;references:Id;constraint:OnDelete:RESTRICT"`
}

type Run struct {
	Id       int       `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Distance float64   `json:"distance" form:"distance" gorm:"not null"` // meters
	Duration float64   `json:"duration" form:"duration" gorm:"not null"` // decimal minutes
	Date     time.Time `json:"date" form:"date"`
	UserId   int       `json:"-" gorm:"not null;index"`
}

type Setting struct {
	Id    int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Key   string `json:"key" form:"key"`
	Value string `json:"value" form:"value"`
}
