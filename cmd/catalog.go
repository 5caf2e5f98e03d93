package cmd

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/heritage-alg/heritage/internal/catalog"
	"github.com/heritage-alg/heritage/internal/db"
)

var catalogDBPath string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the product catalog and manage its SQLite mirror",
}

var catalogImportCmd = &cobra.Command{
	Use:   "import [file-or-url]",
	Short: "Copy a products.json document into the SQLite mirror",
	Long: `Replaces the content of the SQLite mirror with the products of a JSON file
or URL (default: data.products_json). Set data.source to sqlite to serve
from the mirror afterwards.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		var src catalog.Source = catalog.JSONFile{Path: cfg.Data.ProductsJSON}
		if len(args) == 1 {
			src = jsonSource(args[0])
		}
		ctx := cmd.Context()
		products, err := src.Load(ctx)
		if err != nil {
			return fmt.Errorf("loading products: %w", err)
		}

		dbPath := cfg.Data.DBPath
		if catalogDBPath != "" {
			dbPath = catalogDBPath
		}
		database, err := db.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		res, err := catalog.Import(ctx, database, src.String(), products)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Imported %d products from %s into %s (import %s)\n", res.Products, res.Source, dbPath, res.ID)
		if res.Generated > 0 {
			fmt.Fprintf(os.Stderr, "  %d products had no id and were given one\n", res.Generated)
		}
		return nil
	},
}

var catalogListCmd = &cobra.Command{
	Use:   "list [search]",
	Short: "List the products of the configured source",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		src, closeSource, err := newCatalogSource(cfg)
		if err != nil {
			return err
		}
		defer closeSource()

		products, err := catalog.NewLoader(src).Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("loading products: %w", err)
		}
		if len(args) == 1 {
			products = catalog.Search(products, args[0])
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTYPE\tNAME\tRENTAL\tAVAILABLE")
		for _, p := range products {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n", p.ID, catalog.DressTypeName(p.Type), p.Name, catalog.FormatPrice(p.Rental()), p.Available)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "%d products from %s\n", len(products), src)
		}
		return nil
	},
}

func jsonSource(arg string) catalog.Source {
	if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
		return catalog.JSONHTTP{URL: arg, Client: &http.Client{Timeout: 15 * time.Second}}
	}
	return catalog.JSONFile{Path: arg}
}

func init() {
	catalogImportCmd.Flags().StringVar(&catalogDBPath, "db", "", "SQLite mirror path (overrides data.db_path)")

	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogListCmd)
	rootCmd.AddCommand(catalogCmd)
}
