package domain

import (
	"fmt"
	"time"
)

type Profile struct {
	Name        string
	Email       string
	Phone       string
	Address     string
	City        string
	State       string
	ZipCode     string
	Country     string
	DateOfBirth *string
}

type ProfileField string

const (
	ProfileFieldName        ProfileField = "name"
	ProfileFieldEmail       ProfileField = "email"
	ProfileFieldPhone       ProfileField = "phone"
	ProfileFieldAddress     ProfileField = "address"
	ProfileFieldCity        ProfileField = "city"
	ProfileFieldState       ProfileField = "state"
	ProfileFieldZipCode     ProfileField = "zip_code"
	ProfileFieldCountry     ProfileField = "country"
	ProfileFieldDateOfBirth ProfileField = "date_of_birth"
)

// Set assigns value to field. An empty date of birth clears it.
func (p *Profile) Set(field ProfileField, value string) bool {
	switch field {
	case ProfileFieldName:
		p.Name = value
	case ProfileFieldEmail:
		p.Email = value
	case ProfileFieldPhone:
		p.Phone = value
	case ProfileFieldAddress:
		p.Address = value
	case ProfileFieldCity:
		p.City = value
	case ProfileFieldState:
		p.State = value
	case ProfileFieldZipCode:
		p.ZipCode = value
	case ProfileFieldCountry:
		p.Country = value
	case ProfileFieldDateOfBirth:
		if value == "" {
			p.DateOfBirth = nil
		} else {
			p.DateOfBirth = &value
		}
	default:
		return false
	}
	return true
}

// Validate checks the date of birth, the only structured field.
func (p Profile) Validate() error {
	if p.DateOfBirth == nil || *p.DateOfBirth == "" {
		return nil
	}

	if _, err := time.Parse(time.DateOnly, *p.DateOfBirth); err != nil {
		return fmt.Errorf("date_of_birth[%s] is not valid", *p.DateOfBirth)
	}

	return nil
}
