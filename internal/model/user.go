package model

type UserRole string

const (
	Student    UserRole = "student"
	Instructor UserRole = "instructor"
)

// User is an account holder. Role is fixed at signup; no update path
// may change it afterwards.
type User struct {
	BaseModel
	Name     string   `gorm:"size:100;not null" json:"name"`
	Email    string   `gorm:"size:100;unique;not null" json:"email"`
	Password string   `gorm:"size:100;not null" json:"-"`
	Role     UserRole `gorm:"size:20;default:'student'" json:"role"`
}

func (User) TableName() string {
	return "users"
}
