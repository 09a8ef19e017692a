package config

import "github.com/spf13/viper"

// Config holds everything the service reads from the environment. Values
// only; no business logic depends on how they were loaded.
type Config struct {
	Port string

	DatabaseURL string

	ElasticsearchURL      string
	ElasticsearchUsername string
	ElasticsearchPassword string

	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3UseSSL    bool
}

// Load binds configuration from the environment with defaults suitable
// for local development.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("S3_USE_SSL", true)

	for _, key := range []string{
		"PORT",
		"DATABASE_URL",
		"ELASTICSEARCH_URL",
		"ELASTICSEARCH_USERNAME",
		"ELASTICSEARCH_PASSWORD",
		"S3_ENDPOINT",
		"S3_ACCESS_KEY",
		"S3_SECRET_KEY",
		"S3_BUCKET",
		"S3_USE_SSL",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	return &Config{
		Port:                  v.GetString("PORT"),
		DatabaseURL:           v.GetString("DATABASE_URL"),
		ElasticsearchURL:      v.GetString("ELASTICSEARCH_URL"),
		ElasticsearchUsername: v.GetString("ELASTICSEARCH_USERNAME"),
		ElasticsearchPassword: v.GetString("ELASTICSEARCH_PASSWORD"),
		S3Endpoint:            v.GetString("S3_ENDPOINT"),
		S3AccessKey:           v.GetString("S3_ACCESS_KEY"),
		S3SecretKey:           v.GetString("S3_SECRET_KEY"),
		S3Bucket:              v.GetString("S3_BUCKET"),
		S3UseSSL:              v.GetBool("S3_USE_SSL"),
	}, nil
}
