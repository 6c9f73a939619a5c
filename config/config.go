// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
)

var (
	validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}
	validDrivers   = []string{"sqlite", "postgres"}
)

// Setup prepares everything config-related so that the app can start working.
// Function will return an error if something is critically wrong and the
// application can't run because of that.
func Setup() error {
	pflag.Parse()
	v.BindPFlags(pflag.CommandLine)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	//
	// ENVS
	//
	v.BindEnv("app.log_level", "app_log_level")
	v.BindEnv("app.list_cache_seconds", "app_list_cache_seconds")

	v.BindEnv("host.port", "host_port")
	v.BindEnv("host.ssl.enabled", "host_ssl_enabled")

	v.BindEnv("cors.origins", "cors_origins")

	v.BindEnv("db.driver", "db_driver")
	v.BindEnv("db.dsn", "db_dsn")

	v.BindEnv("jwt.secret", "jwt_secret")

	v.BindEnv("google.client_id", "google_client_id")

	v.BindEnv("aws.region", "aws_region")
	v.BindEnv("aws.access_key_id", "aws_access_key_id")
	v.BindEnv("aws.secret_access_key", "aws_secret_access_key")
	v.BindEnv("aws.bucket", "aws_bucket_name")

	v.BindEnv("firebase.credentials_file", "firebase_credentials_file")
	v.BindEnv("notifications.enabled", "notifications_enabled")
	v.BindEnv("reminders.enabled", "reminders_enabled")

	//
	// Defaults
	//
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.list_cache_seconds", 30)

	v.SetDefault("host.port", 8080)
	v.SetDefault("host.ssl.enabled", false)

	v.SetDefault("cors.origins", []string{"http://localhost:3000"})

	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "marketplace.db")

	v.SetDefault("notifications.enabled", false)
	v.SetDefault("reminders.enabled", true)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(v.ConfigFileNotFoundError); ok {
			return errors.New("config.toml file is missing")
		}

		return fmt.Errorf("failed to read config file, %w", err)
	}

	if !slices.Contains(validLogLevels, v.GetString("app.log_level")) {
		return errors.New("invalid log level provided")
	}

	if v.GetInt("host.port") <= 0 {
		return errors.New("invalid port provided")
	}

	if !slices.Contains(validDrivers, v.GetString("db.driver")) {
		return errors.New("invalid db driver provided")
	}

	if v.GetString("db.driver") == "postgres" && v.GetString("db.dsn") == "" {
		return errors.New("db.dsn is required for the postgres driver")
	}

	if v.GetString("jwt.secret") == "" {
		return errors.New("jwt.secret can't be empty")
	}

	if v.GetString("google.client_id") == "" {
		return errors.New("google.client_id can't be empty")
	}

	if v.GetString("aws.bucket") != "" {
		if v.GetString("aws.region") == "" {
			return errors.New("aws.region can't be empty")
		}
		if v.GetString("aws.access_key_id") == "" {
			return errors.New("aws.access_key_id can't be empty")
		}
		if v.GetString("aws.secret_access_key") == "" {
			return errors.New("aws.secret_access_key can't be empty")
		}
	}

	if v.GetBool("notifications.enabled") && v.GetString("firebase.credentials_file") == "" {
		return errors.New("firebase.credentials_file is required when notifications are enabled")
	}

	return nil
}
