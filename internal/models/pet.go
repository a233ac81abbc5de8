package models

type Pet struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"size:50;not null" json:"name"`
	Gender         string `gorm:"not null" json:"gender"`
	Photo          string `gorm:"not null" json:"photo"`
	MedicalHistory string `gorm:"column:medical_history;not null" json:"medical_history"`
	Race           string `gorm:"not null" json:"race"`
	Specie         string `gorm:"not null" json:"specie"`
	EmergencyPhone string `gorm:"column:emergency_phone;not null" json:"emergency_phone"`

	IDUser uint  `gorm:"column:id_user;not null" json:"id_user"`
	User   *User `gorm:"foreignKey:IDUser" json:"-"`
}

func (Pet) TableName() string {
	return "pet"
}

func NewPet(
	name string,
	gender string,
	photo string,
	medicalHistory string,
	race string,
	specie string,
	emergencyPhone string,
	idUser uint,
) *Pet {
	return &Pet{
		Name:           name,
		Gender:         gender,
		Photo:          photo,
		MedicalHistory: medicalHistory,
		Race:           race,
		Specie:         specie,
		EmergencyPhone: emergencyPhone,
		IDUser:         idUser,
	}
}

func (p *Pet) Serialize() map[string]any {
	return map[string]any{
		"id":              p.ID,
		"name":            p.Name,
		"gender":          p.Gender,
		"photo":           p.Photo,
		"medical_history": p.MedicalHistory,
		"race":            p.Race,
		"specie":          p.Specie,
		"emergency_phone": p.EmergencyPhone,
		"id_user":         p.IDUser,
	}
}
