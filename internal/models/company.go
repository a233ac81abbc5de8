package models

// CompanyProfile carries the optional columns of a Company.
type CompanyProfile struct {
	Location    *string
	Photo       *string
	Phone       *string
	Schedule    *string
	Description *string
}

// Company's JSON form matches Serialize: name and password stay private.
type Company struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"-"`
	NameCompany string `gorm:"column:name_company;not null" json:"name_company"`
	Email       string `gorm:"not null" json:"email"`
	Password    string `gorm:"not null" json:"-"`

	Location    *string `json:"location"`
	Photo       *string `json:"photo"`
	Phone       *string `json:"phone"`
	Schedule    *string `json:"schedule"`
	Description *string `json:"description"`

	Services []Services `gorm:"foreignKey:IDCompany" json:"services"`
}

func (Company) TableName() string {
	return "company"
}

func NewCompany(name, nameCompany, email, password string, p CompanyProfile) *Company {
	return &Company{
		Name:        name,
		NameCompany: nameCompany,
		Email:       email,
		Password:    password,
		Location:    p.Location,
		Photo:       p.Photo,
		Phone:       p.Phone,
		Schedule:    p.Schedule,
		Description: p.Description,
	}
}

// Serialize projects the company together with whatever Services were
// loaded alongside it. The back-reference is not fetched here.
func (c *Company) Serialize() map[string]any {
	services := make([]map[string]any, 0, len(c.Services))
	for i := range c.Services {
		services = append(services, c.Services[i].Serialize())
	}

	return map[string]any{
		"id":           c.ID,
		"name_company": c.NameCompany,
		"email":        c.Email,
		"location":     optional(c.Location),
		"photo":        optional(c.Photo),
		"services":     services,
		"phone":        optional(c.Phone),
		"schedule":     optional(c.Schedule),
		"description":  optional(c.Description),
	}
}
