package models

// Favorites pairs a user with a company they marked. The pair is not
// unique: the same user may favorite the same company more than once.
type Favorites struct {
	ID uint `gorm:"primaryKey" json:"id"`

	IDUser uint  `gorm:"column:id_user;not null" json:"id_user"`
	User   *User `gorm:"foreignKey:IDUser" json:"-"`

	IDCompany uint     `gorm:"column:id_company;not null" json:"id_company"`
	Company   *Company `gorm:"foreignKey:IDCompany" json:"-"`
}

func (Favorites) TableName() string {
	return "favorites"
}

func NewFavorites(idUser, idCompany uint) *Favorites {
	return &Favorites{
		IDUser:    idUser,
		IDCompany: idCompany,
	}
}

func (f *Favorites) Serialize() map[string]any {
	return map[string]any{
		"id":         f.ID,
		"id_user":    f.IDUser,
		"id_company": f.IDCompany,
	}
}
