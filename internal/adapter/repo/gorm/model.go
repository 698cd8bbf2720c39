package gormrepo

import "time"

type Portal struct {
	ID      string `gorm:"primaryKey"`
	Name    string
	Galaxy  string
	Address string
	Tags    string `gorm:"type:text"`
	Notes   string `gorm:"type:text"`
}

type Hint struct {
	ID       string `gorm:"primaryKey"`
	Title    string
	Body     string `gorm:"type:text"`
	Category string
}

type Note struct {
	ID        string `gorm:"primaryKey"`
	Title     string
	Body      string `gorm:"type:text"`
	UpdatedAt time.Time
}

type Layout struct {
	Name      string `gorm:"primaryKey"`
	Rows      int32
	Cols      int32
	Slots     string `gorm:"type:text"`
	UpdatedAt time.Time
}

type RecipeOverride struct {
	RecipeID    string `gorm:"primaryKey"`
	Name        string
	Quantity    int32
	TimeSeconds float64
	Inputs      string `gorm:"type:text"`
	AppliedAt   time.Time
}
