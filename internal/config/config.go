package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Data   DataConfig
	Map    MapConfig
	CORS   CORSConfig
	Log    LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DataConfig struct {
	// File is the semicolon-delimited sighting dataset.
	File string
	// ImagesDir holds the static sidebar assets.
	ImagesDir string
	// SourceName and SourceURL credit the upstream survey project.
	SourceName string
	SourceURL  string
}

type MapConfig struct {
	CenterLat float64
	CenterLon float64
	Zoom      int
}

type CORSConfig struct {
	AllowOrigins string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// The .env file is optional; environment variables and defaults are
	// enough to run.
	_ = viper.ReadInConfig()

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Data: DataConfig{
			File:       viper.GetString("DATA_FILE"),
			ImagesDir:  viper.GetString("IMAGES_DIR"),
			SourceName: viper.GetString("DATA_SOURCE_NAME"),
			SourceURL:  viper.GetString("DATA_SOURCE_URL"),
		},
		Map: MapConfig{
			CenterLat: viper.GetFloat64("MAP_CENTER_LAT"),
			CenterLon: viper.GetFloat64("MAP_CENTER_LON"),
			Zoom:      viper.GetInt("MAP_ZOOM"),
		},
		CORS: CORSConfig{
			AllowOrigins: viper.GetString("CORS_ALLOW_ORIGINS"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Data.File == "" {
		cfg.Data.File = "data/seabird_atlas.csv"
	}
	if cfg.Data.ImagesDir == "" {
		cfg.Data.ImagesDir = "images"
	}
	if cfg.Data.SourceName == "" {
		cfg.Data.SourceName = "The Atlas of Seabirds at Sea (AS@S)"
	}
	if cfg.Data.SourceURL == "" {
		cfg.Data.SourceURL = "http://seabirds.saeon.ac.za/"
	}
	if cfg.Map.CenterLat == 0 {
		cfg.Map.CenterLat = -30
	}
	if cfg.Map.CenterLon == 0 {
		cfg.Map.CenterLon = 22
	}
	if cfg.Map.Zoom == 0 {
		cfg.Map.Zoom = 5
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
