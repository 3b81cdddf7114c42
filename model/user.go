package model

type User struct {
	DTO
	Username string `gorm:"unique;not null" json:"username"`
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null" json:"role"` // admin, staff, customer
	Status   string `gorm:"default:'Pending'" json:"status"`

	FirstName *string `json:"firstname"`
	LastName  *string `json:"lastname"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`

	DietaryPreferences *string `json:"dietaryPreferences"`
	Allergies          *string `json:"allergies"`
}

type Users []User

type RegisterUserInput struct {
	Username  string `validate:"required" json:"username"`
	Email     string `validate:"required,email" json:"email"`
	Password  string `validate:"required,min=8" json:"password"`
	Role      string `validate:"required,oneof=admin staff customer" json:"role"`
	FirstName string `validate:"required" json:"firstname"`
	LastName  string `validate:"required" json:"lastname"`
	Address   string `validate:"required" json:"address"`
}

type EditProfileInput struct {
	FirstName          *string `json:"firstname"`
	LastName           *string `json:"lastname"`
	Phone              *string `json:"phone"`
	Address            *string `json:"address"`
	DietaryPreferences *string `json:"dietaryPreferences"`
	Allergies          *string `json:"allergies"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
	RepeatPassword  string `json:"repeatPassword" validate:"required"`
}

type ApproveRegistrationInput struct {
	Approved bool `json:"approved"`
}
