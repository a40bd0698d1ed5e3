package models

// User represents a registered user (customer or executor)
type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Age       string `json:"age"` // stored as text
	Email     string `json:"email"`
	Role      string `json:"role"`
	Phone     string `json:"phone"`
}

// UserFields is the projection used by the list and detail views
var UserFields = []string{"id", "first_name", "last_name"}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

func (u *User) GetID() uint {
	return u.ID
}

func (u *User) SetID(id uint) {
	u.ID = id
}

// Field returns the value of the named column
func (u *User) Field(name string) (any, bool) {
	if u == nil {
		return nil, false
	}

	switch name {
	case "id":
		return u.ID, true
	case "first_name":
		return u.FirstName, true
	case "last_name":
		return u.LastName, true
	case "age":
		return u.Age, true
	case "email":
		return u.Email, true
	case "role":
		return u.Role, true
	case "phone":
		return u.Phone, true
	}
	return nil, false
}
