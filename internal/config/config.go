// Package config provides functionality for managing configuration options
// for the application using command-line flags and environment variables.
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"strings"
)

// Options holds the configuration values for the application.
type Options struct {
	// Addr defines the server's listening address (ip:port).
	Addr string

	// MongoURI holds the connection string for the document store.
	MongoURI string

	// Database is the name of the Mongo database holding the collections.
	Database string

	// JWTSecret signs and verifies session tokens. Must be non-empty.
	JWTSecret string

	// Production toggles the Secure/SameSite attributes of the session cookie.
	Production bool

	// AllowedOrigins lists the origins permitted to send credentialed
	// cross-origin requests.
	AllowedOrigins []string

	// Config is the path to the Config file.
	Config string
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Addr, "a", "localhost:5000", "run on ip:port server")
	flag.StringVar(&options.MongoURI, "m", "mongodb://localhost:27017", "document store connection URI")
	flag.StringVar(&options.Database, "db", "restaurant-management", "database name")
	flag.BoolVar(&options.Production, "prod", false, "enable production cookie attributes")
	flag.StringVar(&options.Config, "config", "config.json", "path to config file")
	flag.StringVar(&options.Config, "c", "config.json", "path to config file (shorthand)")
}

// Parse parses the command-line flags and environment variables to set
// configuration values. It returns a pointer to the Options struct containing
// the parsed configuration values.
func Parse() *Options {
	flag.Parse()

	// Override flags with environment variables if set
	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Addr = serverAddress
	}
	if mongoURI := os.Getenv("MONGO_URI"); mongoURI != "" {
		options.MongoURI = mongoURI
	}
	if database := os.Getenv("MONGO_DATABASE"); database != "" {
		options.Database = database
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		options.JWTSecret = secret
	}
	if os.Getenv("PRODUCTION") == "true" {
		options.Production = true
	}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		options.AllowedOrigins = strings.Split(origins, ",")
	}

	if len(options.AllowedOrigins) == 0 {
		options.AllowedOrigins = []string{"http://localhost:5173"}
	}

	return options
}
