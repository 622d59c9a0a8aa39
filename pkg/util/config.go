package util

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	InputFormat     string             `mapstructure:"input_format" validate:"oneof=pbf json"`
	MapFile         string             `mapstructure:"map_file"`
	NodesFile       string             `mapstructure:"nodes_file"`
	EdgesFile       string             `mapstructure:"edges_file"`
	OutputGraph     string             `mapstructure:"output_graph" validate:"required"`
	OutputAdjacency string             `mapstructure:"output_adjacency" validate:"required"`
	NumWorkers      int                `mapstructure:"num_workers" validate:"gte=1"`
	DefaultSpeedKmh float64            `mapstructure:"default_speed_kmh" validate:"gt=0"`
	HighwaySpeeds   map[string]float64 `mapstructure:"highway_speeds"`
}

// ReadConfig reads config.yaml from ./data/ and validates it. missing keys
// fall back to defaults that match the original planner behavior.
func ReadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.AddConfigPath("./data/")

	viper.SetDefault("input_format", "pbf")
	viper.SetDefault("map_file", "./data/map.osm.pbf")
	viper.SetDefault("nodes_file", "./data/nodes.json")
	viper.SetDefault("edges_file", "./data/edges.json")
	viper.SetDefault("output_graph", "./data/road.graph")
	viper.SetDefault("output_adjacency", "./data/adjacency.json")
	viper.SetDefault("num_workers", 4)
	viper.SetDefault("default_speed_kmh", 50.0)

	err := viper.ReadInConfig()
	if err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("fatal error config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("fatal error config file: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, WrapErrorf(err, ErrBadParamInput, "invalid config")
	}

	return &cfg, nil
}
