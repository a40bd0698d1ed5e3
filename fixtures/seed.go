package fixtures

import (
	"context"
	"fmt"
	"log"

	"github.com/kendall-kelly/task-exchange-api/models"
	"github.com/kendall-kelly/task-exchange-api/store"
)

// Fixture file names
const (
	UsersFile  = "users.json"
	OrdersFile = "orders.json"
	OffersFile = "offers.json"
)

// Counts reports how many rows were seeded per table
type Counts struct {
	Users  int
	Orders int
	Offers int
}

// Seed inserts the users, orders and offers fixtures in one transaction.
// Any failure rolls back the whole batch.
func Seed(ctx context.Context, st *store.Store, src Source) (Counts, error) {
	var counts Counts

	err := st.Transaction(ctx, func(tx *store.Store) error {
		// users first, then orders, then offers, so enforced foreign keys resolve
		if err := Load(ctx, src, UsersFile, func(u models.User) error {
			counts.Users++
			return tx.Users.Create(ctx, &u)
		}); err != nil {
			return err
		}

		if err := Load(ctx, src, OrdersFile, func(o models.Order) error {
			counts.Orders++
			return tx.Orders.Create(ctx, &o)
		}); err != nil {
			return err
		}

		if err := Load(ctx, src, OffersFile, func(o models.Offer) error {
			counts.Offers++
			return tx.Offers.Create(ctx, &o)
		}); err != nil {
			return err
		}

		return tx.ResetSequences(ctx)
	})
	if err != nil {
		return Counts{}, fmt.Errorf("failed to seed database: %w", err)
	}

	log.Printf("Seeded database: %d users, %d orders, %d offers", counts.Users, counts.Orders, counts.Offers)
	return counts, nil
}
