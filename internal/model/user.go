package model

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// swagger:model User
type User struct {
	BaseModel
	Name  string `gorm:"size:255;not null" json:"name"`
	Email string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	// Usuários comuns autenticam por nome+email; a senha pode ficar vazia.
	Password string   `gorm:"size:255" json:"-"`
	Role     UserRole `gorm:"size:20;not null;default:'user'" json:"role"`
}

func (User) TableName() string {
	return "users"
}

// UserSummary é o recorte do usuário devolvido no login.
type UserSummary struct {
	ID    uint     `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
