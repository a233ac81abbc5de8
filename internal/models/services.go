package models

type Services struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"not null" json:"description"`
	Image       string `gorm:"not null" json:"image"`
	IsActive    bool   `gorm:"column:is_active;not null" json:"is_active"`

	IDCompany uint     `gorm:"column:id_company;not null" json:"id_company"`
	Company   *Company `gorm:"foreignKey:IDCompany" json:"-"`
}

func (Services) TableName() string {
	return "services"
}

func NewServices(name, description, image string, idCompany uint, isActive bool) *Services {
	return &Services{
		Name:        name,
		Description: description,
		Image:       image,
		IDCompany:   idCompany,
		IsActive:    isActive,
	}
}

func (s *Services) Serialize() map[string]any {
	return map[string]any{
		"id":          s.ID,
		"name":        s.Name,
		"description": s.Description,
		"image":       s.Image,
		"id_company":  s.IDCompany,
		"is_active":   s.IsActive,
	}
}
