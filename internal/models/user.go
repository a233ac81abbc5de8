package models

// UserProfile carries the optional columns of a User.
type UserProfile struct {
	Location       *string
	Photo          *string
	Phone          *string
	SecondaryPhone *string
	Age            *int
}

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:50;not null" json:"name"`
	Email    string `gorm:"size:120;uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	IsActive bool   `gorm:"column:is_active;not null" json:"is_active"`

	Location       *string `json:"location"`
	Photo          *string `json:"photo"`
	Phone          *string `json:"phone"`
	SecondaryPhone *string `json:"-"`
	Age            *int    `json:"age"`

	Pets []Pet `gorm:"foreignKey:IDUser" json:"-"`
}

func (User) TableName() string {
	return "user"
}

func NewUser(name, email, password string, isActive bool, p UserProfile) *User {
	return &User{
		Name:           name,
		Email:          email,
		Password:       password,
		IsActive:       isActive,
		Location:       p.Location,
		Photo:          p.Photo,
		Phone:          p.Phone,
		SecondaryPhone: p.SecondaryPhone,
		Age:            p.Age,
	}
}

// Serialize never exposes password or secondary_phone.
func (u *User) Serialize() map[string]any {
	return map[string]any{
		"id":        u.ID,
		"name":      u.Name,
		"email":     u.Email,
		"is_active": u.IsActive,
		"location":  optional(u.Location),
		"photo":     optional(u.Photo),
		"phone":     optional(u.Phone),
		"age":       optional(u.Age),
	}
}
