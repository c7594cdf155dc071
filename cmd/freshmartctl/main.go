package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/HackerKing5128/voicecart/internal/config"
	"github.com/HackerKing5128/voicecart/internal/database"
	"github.com/HackerKing5128/voicecart/internal/db"
	catalogRepo "github.com/HackerKing5128/voicecart/internal/repository/catalog"
	fraudRepo "github.com/HackerKing5128/voicecart/internal/repository/fraudcase"
	orderRepo "github.com/HackerKing5128/voicecart/internal/repository/order"
	"gorm.io/gorm"
)

// freshmartctl inspects the store database from the command line. It is
// meant for demo operators checking what the voice agent actually did.

var rootCmd = &cobra.Command{
	Use:   "freshmartctl",
	Short: "Inspect the FreshMart demo database",
	Long: `Inspect the FreshMart demo database.

Available subcommands:
  catalog - List the seeded catalog
  orders  - List recent orders with their lines
  cases   - List fraud review cases`,
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the seeded catalog",
	RunE:  runCatalog,
}

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List recent orders with their lines",
	RunE:  runOrders,
}

var casesCmd = &cobra.Command{
	Use:   "cases",
	Short: "List fraud review cases",
	RunE:  runCases,
}

var orderLimit int

func openDB() (*gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	conn, err := db.InitDB(*cfg)
	if err != nil {
		return nil, err
	}
	if err := database.MigrateDB(conn); err != nil {
		return nil, err
	}
	return conn, nil
}

func runCatalog(cmd *cobra.Command, args []string) error {
	conn, err := openDB()
	if err != nil {
		return err
	}

	repo := catalogRepo.NewGormItemRepo(conn, 0)
	items, err := repo.All()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tUNIT\tTAGS")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t$%.2f\t%s\t%s\n",
			item.ID, item.Name, item.Category, item.Price, item.Unit, strings.Join(item.Tags, ","))
	}
	return w.Flush()
}

func runOrders(cmd *cobra.Command, args []string) error {
	conn, err := openDB()
	if err != nil {
		return err
	}

	repo := orderRepo.NewGormOrderRepo(conn)
	orders, err := repo.ListRecent(orderLimit)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		fmt.Println("No orders yet.")
		return nil
	}

	for _, o := range orders {
		fmt.Printf("%s  %s  %s %.2f  [%s]  placed %s\n",
			o.OrderID, o.CustomerName, o.Currency, o.Total, o.Status,
			o.CreatedAt.Format("2006-01-02 15:04:05"))
		for _, line := range o.Items {
			fmt.Printf("    %dx %s @ %.2f = %.2f\n",
				line.Quantity, line.ItemName, line.UnitPrice, line.Subtotal)
		}
	}
	return nil
}

func runCases(cmd *cobra.Command, args []string) error {
	conn, err := openDB()
	if err != nil {
		return err
	}

	repo := fraudRepo.NewGormCaseRepo(conn)
	cases, err := repo.ListAll()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSER\tCARD\tAMOUNT\tMERCHANT\tSTATUS\tNOTE")
	for _, c := range cases {
		fmt.Fprintf(w, "%d\t%s\t*%s\t$%.2f\t%s\t%s\t%s\n",
			c.ID, c.UserName, c.CardEnding, c.TransactionAmount,
			c.TransactionName, c.Status, c.OutcomeNote)
	}
	return w.Flush()
}

func main() {
	ordersCmd.Flags().IntVar(&orderLimit, "limit", 10, "maximum orders to show")

	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(ordersCmd)
	rootCmd.AddCommand(casesCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
