package models

// Offer represents an executor responding to an order
type Offer struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	OrderID    *uint  `gorm:"index" json:"order_id"` // foreign key to orders table
	Order      *Order `gorm:"foreignKey:OrderID" json:"-"`
	ExecutorID *uint  `gorm:"index" json:"executor_id"` // foreign key to users table
	Executor   *User  `gorm:"foreignKey:ExecutorID" json:"-"`
}

// OfferFields is the projection used by the list and detail views
var OfferFields = []string{"id", "order_id", "executor_id"}

// TableName specifies the table name for the Offer model
func (Offer) TableName() string {
	return "offers"
}

func (o *Offer) GetID() uint {
	return o.ID
}

func (o *Offer) SetID(id uint) {
	o.ID = id
}

// Field returns the value of the named column
func (o *Offer) Field(name string) (any, bool) {
	if o == nil {
		return nil, false
	}

	switch name {
	case "id":
		return o.ID, true
	case "order_id":
		return idOrNil(o.OrderID), true
	case "executor_id":
		return idOrNil(o.ExecutorID), true
	}
	return nil, false
}
