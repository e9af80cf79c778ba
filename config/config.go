// config/config.go
package config

import (
	"strings"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type MongoConfig struct {
	URI    string `mapstructure:"uri"`
	DBName string `mapstructure:"dbName"`
}

// OIDCConfig points at the external identity provider. Disabled skips token
// verification entirely for local development without the provider.
type OIDCConfig struct {
	Issuer   string `mapstructure:"issuer"`
	Disabled bool   `mapstructure:"disabled"`
}

type CORSConfig struct {
	Origins string `mapstructure:"origins"` // comma separated, "*" for all
}

type S3Config struct {
	Bucket           string `mapstructure:"bucket"`
	Region           string `mapstructure:"region"`
	AccessKeyID      string `mapstructure:"accessKeyID"`
	SecretAccessKey  string `mapstructure:"secretAccessKey"`
	CloudFrontDomain string `mapstructure:"cloudFrontDomain"`
}

type SeedConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Mongo  MongoConfig  `mapstructure:"mongo"`
	OIDC   OIDCConfig   `mapstructure:"oidc"`
	CORS   CORSConfig   `mapstructure:"cors"`
	S3     S3Config     `mapstructure:"s3"`
	Seed   SeedConfig   `mapstructure:"seed"`
}

// OriginList splits the configured CORS origins.
func (c Config) OriginList() []string {
	parts := strings.Split(c.CORS.Origins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return origins
}

// LoadConfig reads config.yaml and overrides it with environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()

	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("mongo.uri", "MONGO_URI")
	viper.BindEnv("mongo.dbName", "MONGO_DBNAME")
	viper.BindEnv("oidc.issuer", "OIDC_ISSUER")
	viper.BindEnv("oidc.disabled", "AUTH_DISABLED")
	viper.BindEnv("cors.origins", "CORS_ORIGINS")
	viper.BindEnv("s3.bucket", "S3_BUCKET")
	viper.BindEnv("s3.region", "S3_REGION")
	viper.BindEnv("s3.accessKeyID", "S3_ACCESS_KEY_ID")
	viper.BindEnv("s3.secretAccessKey", "S3_SECRET_ACCESS_KEY")
	viper.BindEnv("s3.cloudFrontDomain", "S3_CLOUDFRONT_DOMAIN")
	viper.BindEnv("seed.enabled", "SEED_ENABLED")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("mongo.uri", "mongodb://localhost:27017")
	viper.SetDefault("mongo.dbName", "fleet_management")
	viper.SetDefault("cors.origins", "*")

	// If config.yaml does not exist viper falls back to env vars alone.
	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)
	return
}
