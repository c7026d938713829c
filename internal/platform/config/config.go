package config

import (
	"log"
	"time"

	"github.com/RAVEN850972/cam/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	AdminUsername     string
	AdminPasswordHash string // bcrypt

	LoginRateLimit string // ulule/limiter format, e.g. "5-M"

	Pricing domain.PricingRules
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "cam-backend")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")

	// Pricing rules, overridable per deployment
	viper.SetDefault("MANAGER_ORDER_COMMISSION", "1000")
	viper.SetDefault("MOUNT_UPSELL_PERCENT", "0.3")
	viper.SetDefault("AC_PROFIT_PERCENT", "0.2")
	viper.SetDefault("ADDON_PROFIT_PERCENT", "0.3")
	viper.SetDefault("INSTALLER_BASE_PAYMENT", "1500")
	viper.SetDefault("INSTALLER_SALE_BONUS", "250")
	viper.SetDefault("STANDARD_MOUNT_PRICE_LOW", "4000")
	viper.SetDefault("STANDARD_MOUNT_PRICE_HIGH", "6000")
	viper.SetDefault("OWNER_ORDER_COMMISSION", "1500")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.AdminUsername = viper.GetString("ADMIN_USERNAME")
	cfg.AdminPasswordHash = viper.GetString("ADMIN_PASSWORD_HASH")
	if cfg.AdminPasswordHash == "" {
		log.Println("Warning: ADMIN_PASSWORD_HASH not set. Login will be rejected until it is configured.")
	}

	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")

	cfg.Pricing = loadPricingRules()

	return cfg, nil
}

// loadPricingRules reads the commission constants, falling back to the
// built-in defaults on malformed values.
func loadPricingRules() domain.PricingRules {
	rules := domain.DefaultPricingRules()
	rules.ManagerOrderCommission = decimalFromEnv("MANAGER_ORDER_COMMISSION", rules.ManagerOrderCommission)
	rules.MountUpsellPercent = decimalFromEnv("MOUNT_UPSELL_PERCENT", rules.MountUpsellPercent)
	rules.ACProfitPercent = decimalFromEnv("AC_PROFIT_PERCENT", rules.ACProfitPercent)
	rules.AddonProfitPercent = decimalFromEnv("ADDON_PROFIT_PERCENT", rules.AddonProfitPercent)
	rules.InstallerBasePayment = decimalFromEnv("INSTALLER_BASE_PAYMENT", rules.InstallerBasePayment)
	rules.InstallerSaleBonus = decimalFromEnv("INSTALLER_SALE_BONUS", rules.InstallerSaleBonus)
	rules.StandardMountPriceLow = decimalFromEnv("STANDARD_MOUNT_PRICE_LOW", rules.StandardMountPriceLow)
	rules.StandardMountPriceHigh = decimalFromEnv("STANDARD_MOUNT_PRICE_HIGH", rules.StandardMountPriceHigh)
	rules.OwnerOrderCommission = decimalFromEnv("OWNER_ORDER_COMMISSION", rules.OwnerOrderCommission)
	return rules
}

func decimalFromEnv(key string, fallback decimal.Decimal) decimal.Decimal {
	raw := viper.GetString(key)
	value, err := decimal.NewFromString(raw)
	if err != nil {
		log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		return fallback
	}
	return value
}
