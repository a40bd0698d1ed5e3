package models

// Order represents a job posted by a customer and carried out by an executor
type Order struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"` // free-form, not validated
	EndDate     string `json:"end_date"`
	Address     string `json:"address"`
	Price       int    `json:"price"`
	CustomerID  *uint  `gorm:"index" json:"customer_id"` // foreign key to users table
	Customer    *User  `gorm:"foreignKey:CustomerID" json:"-"`
	ExecutorID  *uint  `gorm:"index" json:"executor_id"` // foreign key to users table
	Executor    *User  `gorm:"foreignKey:ExecutorID" json:"-"`
}

// OrderFields is the projection used by the list and detail views
var OrderFields = []string{"id", "name", "description"}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

func (o *Order) GetID() uint {
	return o.ID
}

func (o *Order) SetID(id uint) {
	o.ID = id
}

// Field returns the value of the named column
func (o *Order) Field(name string) (any, bool) {
	if o == nil {
		return nil, false
	}

	switch name {
	case "id":
		return o.ID, true
	case "name":
		return o.Name, true
	case "description":
		return o.Description, true
	case "start_date":
		return o.StartDate, true
	case "end_date":
		return o.EndDate, true
	case "address":
		return o.Address, true
	case "price":
		return o.Price, true
	case "customer_id":
		return idOrNil(o.CustomerID), true
	case "executor_id":
		return idOrNil(o.ExecutorID), true
	}
	return nil, false
}

// idOrNil unwraps a nullable foreign key
func idOrNil(id *uint) any {
	if id == nil {
		return nil
	}
	return *id
}
