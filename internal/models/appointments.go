package models

import "errors"

// ErrServiceNotLoaded is returned by Appointments.Serialize when the
// Service association was not fetched with the row.
var ErrServiceNotLoaded = errors.New("appointments: service not loaded")

// Appointments keeps date, time and duration as opaque text. Status is
// free text with no transitions enforced.
type Appointments struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Date     string `gorm:"not null" json:"date"`
	Status   string `gorm:"not null" json:"status"`
	Time     string `gorm:"not null" json:"time"`
	Location string `gorm:"not null" json:"location"`
	Details  string `gorm:"not null" json:"details"`
	Duration string `gorm:"not null" json:"duration"`

	IDPet uint `gorm:"column:id_pet;not null" json:"id_pet"`
	Pet   *Pet `gorm:"foreignKey:IDPet" json:"-"`

	IDService uint      `gorm:"column:id_service;not null" json:"id_service"`
	Service   *Services `gorm:"foreignKey:IDService" json:"-"`
}

func (Appointments) TableName() string {
	return "appointments"
}

func NewAppointments(
	date string,
	status string,
	time string,
	location string,
	details string,
	duration string,
	idPet uint,
	idService uint,
) *Appointments {
	return &Appointments{
		Date:      date,
		Status:    status,
		Time:      time,
		Location:  location,
		Details:   details,
		Duration:  duration,
		IDPet:     idPet,
		IDService: idService,
	}
}

// Serialize surfaces id_company from the loaded Service.
func (a *Appointments) Serialize() (map[string]any, error) {
	if a.Service == nil {
		return nil, ErrServiceNotLoaded
	}

	return map[string]any{
		"id":         a.ID,
		"date":       a.Date,
		"status":     a.Status,
		"time":       a.Time,
		"location":   a.Location,
		"details":    a.Details,
		"duration":   a.Duration,
		"id_pet":     a.IDPet,
		"id_service": a.IDService,
		"id_company": a.Service.IDCompany,
	}, nil
}
