package config

import "github.com/heritage-alg/heritage/internal/carousel"

// DefaultImageIncludes are the glob patterns of source images.
var DefaultImageIncludes = []string{
	"**/*.jpg",
	"**/*.jpeg",
	"**/*.png",
	"**/*.webp",
}

// DefaultImageExcludes are never processed.
var DefaultImageExcludes = []string{
	"**/*.backup",
	"**/*.backup.*",
	"**/.*/**",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			AllowAllOrigins: true,
		},
		Data: DataConfig{
			Source:       SourceJSON,
			ProductsJSON: "data/products.json",
			DBPath:       "data/catalog.db",
		},
		AssetsDir: "public/assets",
		Carousel: CarouselConfig{
			Gap:          carousel.DefaultGap,
			Breakpoint:   carousel.DefaultBreakpoint,
			VisibleCount: carousel.DefaultVisibleCount,
			Strategy:     string(carousel.StrategyModular),
			TileFactor:   carousel.DefaultTileFactor,
			Buffer:       carousel.DefaultBuffer,
			MinSwipe:     carousel.MinSwipeDistance,
		},
		Contact: ContactConfig{
			CalendlyURL: "https://calendly.com/heritage-rdv",
			Email:       "heritage.bynedhal@gmail.com",
			Phone:       "0664084407",
			Location:    "Gennevilliers, Île de France",
			Instagram:   "https://www.instagram.com/heritage.alg/",
			Facebook:    "https://www.facebook.com/profile.php?id=61580527445389",
			TikTok:      "https://www.tiktok.com/@heritage.algg",
		},
		Images: ImagesConfig{
			Dir:         "public/assets",
			Include:     append([]string(nil), DefaultImageIncludes...),
			Exclude:     append([]string(nil), DefaultImageExcludes...),
			Quality:     85,
			Concurrency: 4,
		},
		Build: BuildConfig{
			OutputDir: "dist",
		},
	}
}

// Options converts the carousel settings of the product scroller.
func (c CarouselConfig) Options() carousel.Options {
	return carousel.Options{
		Gap:          c.Gap,
		Breakpoint:   c.Breakpoint,
		VisibleCount: c.VisibleCount,
		Strategy:     carousel.Strategy(c.Strategy),
		TileFactor:   c.TileFactor,
		Buffer:       c.Buffer,
		MinSwipe:     c.MinSwipe,
	}
}

// TestimonialOptions is Options with the responsive breakpoint rule.
func (c CarouselConfig) TestimonialOptions() carousel.Options {
	o := c.Options()
	o.Responsive = true
	return o
}
