package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// DefaultPath is the config file written by the wizard.
const DefaultPath = "heritage.yml"

// detectProductsFile looks for a catalog in the usual places.
func detectProductsFile() string {
	for _, p := range []string{"data/products.json", "public/data/products.json", "products.json"} {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to heritage! Let's configure the site.")
	fmt.Println()

	cfg := DefaultConfig()

	detected := detectProductsFile()
	if detected != "" {
		fmt.Printf("Detected catalog: %s\n\n", detected)
		cfg.Data.ProductsJSON = detected
	}

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:    "HTTP port",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 2. Catalog source.
	sourcePrompt := promptui.Select{
		Label: "Where is the product catalog?",
		Items: []string{
			"json   - a products.json file on disk",
			"http   - a products.json served by another host",
			"sqlite - the mirror written by heritage catalog import",
		},
	}
	sourceIdx, _, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("source selection: %w", err)
	}
	sources := []DataSource{SourceJSON, SourceHTTP, SourceSQLite}
	cfg.Data.Source = sources[sourceIdx]

	switch cfg.Data.Source {
	case SourceJSON:
		p := promptui.Prompt{Label: "Path to products.json", Default: cfg.Data.ProductsJSON}
		if cfg.Data.ProductsJSON, err = p.Run(); err != nil {
			return nil, fmt.Errorf("products path: %w", err)
		}
	case SourceHTTP:
		p := promptui.Prompt{Label: "URL of products.json", Validate: validateURL}
		if cfg.Data.ProductsURL, err = p.Run(); err != nil {
			return nil, fmt.Errorf("products url: %w", err)
		}
	case SourceSQLite:
		p := promptui.Prompt{Label: "Path to the catalog database", Default: cfg.Data.DBPath}
		if cfg.Data.DBPath, err = p.Run(); err != nil {
			return nil, fmt.Errorf("database path: %w", err)
		}
	}

	// 3. Accessories page.
	accPrompt := promptui.Select{
		Label: "Show the accessories page?",
		Items: []string{"no", "yes"},
	}
	accIdx, _, err := accPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("accessories selection: %w", err)
	}
	cfg.Features.AccessoriesEnabled = accIdx == 1

	// 4. Scheduling widget.
	calPrompt := promptui.Prompt{
		Label:    "Calendly booking URL",
		Default:  cfg.Contact.CalendlyURL,
		Validate: validateURL,
	}
	if cfg.Contact.CalendlyURL, err = calPrompt.Run(); err != nil {
		return nil, fmt.Errorf("calendly url: %w", err)
	}

	// 5. Image globs.
	excludePrompt := promptui.Prompt{
		Label:   "Extra image exclude patterns (comma-separated, leave blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}
	if excludeStr != "" {
		cfg.Images.Exclude = append(append([]string{}, DefaultImageExcludes...), splitAndTrim(excludeStr)...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultPath
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("port must be a number between 1 and 65535")
	}
	return nil
}

func validateURL(s string) error {
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return fmt.Errorf("must start with http:// or https://")
	}
	return nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
