package config

// DataSource selects where the product catalog is read from.
type DataSource string

const (
	SourceJSON   DataSource = "json"
	SourceHTTP   DataSource = "http"
	SourceSQLite DataSource = "sqlite"
)

// Config is the top-level heritage configuration, corresponding to heritage.yml.
type Config struct {
	Server    ServerConfig   `yaml:"server" koanf:"server"`
	Data      DataConfig     `yaml:"data" koanf:"data"`
	AssetsDir string         `yaml:"assets_dir" koanf:"assets_dir"`
	Features  Features       `yaml:"features" koanf:"features"`
	Carousel  CarouselConfig `yaml:"carousel" koanf:"carousel"`
	Contact   ContactConfig  `yaml:"contact" koanf:"contact"`
	Images    ImagesConfig   `yaml:"images" koanf:"images"`
	Build     BuildConfig    `yaml:"build" koanf:"build"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int      `yaml:"port" koanf:"port"`
	AllowAllOrigins bool     `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	AllowedOrigins  []string `yaml:"allowed_origins" koanf:"allowed_origins"`
	Dev             bool     `yaml:"dev" koanf:"dev"`
}

// DataConfig locates the product catalog.
type DataConfig struct {
	Source       DataSource `yaml:"source" koanf:"source"`
	ProductsJSON string     `yaml:"products_json" koanf:"products_json"`
	ProductsURL  string     `yaml:"products_url" koanf:"products_url"`
	DBPath       string     `yaml:"db_path" koanf:"db_path"`
}

// Features toggles parts of the site without removing them.
type Features struct {
	AccessoriesEnabled bool `yaml:"accessories_enabled" koanf:"accessories_enabled"`
	// AdminEnabled is reserved: there are no admin routes while the catalog
	// is static.
	AdminEnabled bool `yaml:"admin_enabled" koanf:"admin_enabled"`
}

// CarouselConfig tunes both carousels.
type CarouselConfig struct {
	Gap          float64 `yaml:"gap" koanf:"gap"`
	Breakpoint   float64 `yaml:"breakpoint" koanf:"breakpoint"`
	VisibleCount int     `yaml:"visible_count" koanf:"visible_count"`
	Strategy     string  `yaml:"strategy" koanf:"strategy"`
	TileFactor   int     `yaml:"tile_factor" koanf:"tile_factor"`
	Buffer       int     `yaml:"buffer" koanf:"buffer"`
	MinSwipe     float64 `yaml:"min_swipe" koanf:"min_swipe"`
}

// ContactConfig holds the boutique's public contact details.
type ContactConfig struct {
	CalendlyURL string `yaml:"calendly_url" koanf:"calendly_url"`
	Email       string `yaml:"email" koanf:"email"`
	Phone       string `yaml:"phone" koanf:"phone"`
	Location    string `yaml:"location" koanf:"location"`
	Instagram   string `yaml:"instagram" koanf:"instagram"`
	Facebook    string `yaml:"facebook" koanf:"facebook"`
	TikTok      string `yaml:"tiktok" koanf:"tiktok"`
}

// ImagesConfig drives the resize and compress batches.
type ImagesConfig struct {
	Dir         string   `yaml:"dir" koanf:"dir"`
	Include     []string `yaml:"include" koanf:"include"`
	Exclude     []string `yaml:"exclude" koanf:"exclude"`
	Quality     int      `yaml:"quality" koanf:"quality"`
	Concurrency int      `yaml:"concurrency" koanf:"concurrency"`
}

// BuildConfig holds static export settings.
type BuildConfig struct {
	OutputDir string `yaml:"output_dir" koanf:"output_dir"`
}
