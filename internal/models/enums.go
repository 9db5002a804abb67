package models

type Status string

const (
	StatusOpen     Status = "OPEN"
	StatusComplete Status = "COMPLETE"
)

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)
