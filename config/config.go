package config

import (
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	Clinic  ClinicConfig
	Invoice InvoiceConfig
	SMTP    SMTPConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// ClinicConfig holds the scheduling rules: the ordered consultation room
// pool and the weekday the clinic is closed (time.Weekday numbering,
// 0 = Sunday).
type ClinicConfig struct {
	Rooms         []string
	ClosedWeekday int
}

// InvoiceConfig controls whether a flat tax rate is applied on top of the
// catalog-price subtotal when an appointment is completed.
type InvoiceConfig struct {
	TaxEnabled bool
	TaxRate    decimal.Decimal
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// The .env file is optional outside local development; environment
		// variables alone are enough.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, err
		}
	}

	rooms := strings.Split(viper.GetString("CLINIC_ROOMS"), ",")
	if len(rooms) == 1 && rooms[0] == "" {
		rooms = []string{"1", "2", "3"}
	}

	viper.SetDefault("APP_PORT", "3000")
	viper.SetDefault("CLINIC_CLOSED_WEEKDAY", 0) // Sunday
	viper.SetDefault("INVOICE_TAX_RATE", "0.21")
	viper.SetDefault("SMTP_PORT", 587)

	taxRate, err := decimal.NewFromString(viper.GetString("INVOICE_TAX_RATE"))
	if err != nil {
		return nil, err
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Clinic: ClinicConfig{
			Rooms:         rooms,
			ClosedWeekday: viper.GetInt("CLINIC_CLOSED_WEEKDAY"),
		},
		Invoice: InvoiceConfig{
			TaxEnabled: viper.GetBool("INVOICE_TAX_ENABLED"),
			TaxRate:    taxRate,
		},
		SMTP: SMTPConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASSWORD"),
			From:     viper.GetString("SMTP_FROM"),
		},
	}

	return config, nil
}
