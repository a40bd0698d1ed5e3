package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/task-exchange-api/models"
	"github.com/kendall-kelly/task-exchange-api/serializer"
	"github.com/kendall-kelly/task-exchange-api/store"
)

// entity is a model row the controllers can store and project
type entity[T any] interface {
	store.Record[T]
	serializer.Fielder
}

// EntityController serves list/detail/create/update/delete for one table
type EntityController[T any, P entity[T]] struct {
	table  *store.Table[T, P]
	code   string   // upper-case singular used in error codes, e.g. "USER"
	path   string   // collection path, e.g. "/users"
	fields []string // projection for list and detail views
}

// NewUserController serves the /users endpoints
func NewUserController(st *store.Store) *EntityController[models.User, *models.User] {
	return &EntityController[models.User, *models.User]{
		table:  st.Users,
		code:   "USER",
		path:   "/users",
		fields: models.UserFields,
	}
}

// NewOrderController serves the /orders endpoints
func NewOrderController(st *store.Store) *EntityController[models.Order, *models.Order] {
	return &EntityController[models.Order, *models.Order]{
		table:  st.Orders,
		code:   "ORDER",
		path:   "/orders",
		fields: models.OrderFields,
	}
}

// NewOfferController serves the /offers endpoints
func NewOfferController(st *store.Store) *EntityController[models.Offer, *models.Offer] {
	return &EntityController[models.Offer, *models.Offer]{
		table:  st.Offers,
		code:   "OFFER",
		path:   "/offers",
		fields: models.OfferFields,
	}
}

// List handles GET /<entity>
func (ctl *EntityController[T, P]) List(c *gin.Context) {
	rows, err := ctl.table.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, ctl.code, "list")
		return
	}

	render(c, serializer.ProjectAll[T, P](rows, ctl.fields...))
}

// Get handles GET /<entity>/:id
func (ctl *EntityController[T, P]) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	row, err := ctl.table.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, ctl.code, "get")
		return
	}

	render(c, serializer.Project(row, ctl.fields...))
}

// Create handles POST /<entity>. An id in the body is used as the primary key.
func (ctl *EntityController[T, P]) Create(c *gin.Context) {
	row := P(new(T))
	if !bindBody(c, row) {
		return
	}

	if err := ctl.table.Create(c.Request.Context(), row); err != nil {
		respondStoreError(c, err, ctl.code, "create")
		return
	}

	c.Header("Location", fmt.Sprintf("%s/%d", ctl.path, row.GetID()))
	c.Status(http.StatusCreated)
}

// Update handles PUT /<entity>/:id - every column is replaced by the body,
// missing fields are stored empty. The path id wins over any id in the body.
func (ctl *EntityController[T, P]) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	row := P(new(T))
	if !bindBodyWithoutID(c, row) {
		return
	}

	if err := ctl.table.Update(c.Request.Context(), id, row); err != nil {
		respondStoreError(c, err, ctl.code, "update")
		return
	}

	c.Status(http.StatusOK)
}

// Delete handles DELETE /<entity>/:id. Unknown ids succeed.
func (ctl *EntityController[T, P]) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctl.table.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, ctl.code, "delete")
		return
	}

	c.Status(http.StatusOK)
}
