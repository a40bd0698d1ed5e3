package commands

import (
	"fmt"

	"github.com/kendall-kelly/task-exchange-api/fixtures"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the fixtures into an empty database",
	Long: `Load the users, orders and offers fixtures into the configured database.

The server does this on its own the first time it creates a database; use
this command when that first load failed or the database was emptied.
It refuses to run if any of the three tables already has rows.`,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, _, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore(st)

	ctx := cmd.Context()
	for table, count := range map[string]func() (int64, error){
		"users":  func() (int64, error) { return st.Users.Count(ctx) },
		"orders": func() (int64, error) { return st.Orders.Count(ctx) },
		"offers": func() (int64, error) { return st.Offers.Count(ctx) },
	} {
		n, err := count()
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("table %s already has %d rows, refusing to seed", table, n)
		}
	}

	src, err := fixtures.NewSource(ctx, cfg)
	if err != nil {
		return err
	}

	counts, err := fixtures.Seed(ctx, st, src)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d users, %d orders, %d offers\n", counts.Users, counts.Orders, counts.Offers)
	return nil
}
