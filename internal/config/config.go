package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type Config struct {
	LogLevel string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Players  []Player `yaml:"players"`
	Redis    Redis    `yaml:"redis"`
}

type Player struct {
	Name string `yaml:"name"`
	Mark string `yaml:"mark"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

var defaultPlayers = []Player{
	{Name: "Adam", Mark: "X"},
	{Name: "Tom", Mark: "O"},
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if len(config.Players) == 0 {
		config.Players = defaultPlayers
	}

	return config, nil
}

// GamePlayers - validates the configured players and converts them for the game.
func (that *Config) GamePlayers() ([]entity.Player, error) {
	players := make([]entity.Player, 0, len(that.Players))
	for _, configured := range that.Players {
		player, err := entity.NewPlayer(configured.Name, configured.Mark)
		if err != nil {
			return nil, fmt.Errorf("invalid player %q: %w", configured.Name, err)
		}

		players = append(players, player)
	}

	return players, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
