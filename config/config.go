package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Game   GameConfig   `mapstructure:"game"`
	Decks  DeckConfig   `mapstructure:"decks"`
}

type ServerConfig struct {
	HTTPAddress    string `mapstructure:"http_address"`
	RPCAddress     string `mapstructure:"rpc_address"`
	MetricsAddress string `mapstructure:"metrics_address"`
}

// GameConfig holds the pacing and capacity tunables that live outside the core
// game logic. Adjusting them must never affect correctness.
type GameConfig struct {
	HandSize        int   `mapstructure:"hand_size"`
	RoundSeconds    int   `mapstructure:"round_seconds"`
	RevealSeconds   int   `mapstructure:"reveal_seconds"`
	MinPlayers      int   `mapstructure:"min_players"`
	RoomCapacity    int   `mapstructure:"room_capacity"`
	DefaultWinScore int   `mapstructure:"default_win_score"`
	WinScores       []int `mapstructure:"win_scores"`
	ChatMaxLen      int   `mapstructure:"chat_max_len"`
}

type DeckConfig struct {
	PromptPath   string `mapstructure:"prompt_path"`
	ResponsePath string `mapstructure:"response_path"`
}

func (g GameConfig) RoundDuration() time.Duration {
	return time.Duration(g.RoundSeconds) * time.Second
}

func (g GameConfig) RevealDuration() time.Duration {
	return time.Duration(g.RevealSeconds) * time.Second
}

func LoadConfig(path string) (config *Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("server.http_address", ":3090")
	viper.SetDefault("server.rpc_address", ":3091")
	viper.SetDefault("server.metrics_address", ":9100")
	viper.SetDefault("game.hand_size", 10)
	viper.SetDefault("game.round_seconds", 45)
	viper.SetDefault("game.reveal_seconds", 4)
	viper.SetDefault("game.min_players", 3)
	viper.SetDefault("game.room_capacity", 10)
	viper.SetDefault("game.default_win_score", 7)
	viper.SetDefault("game.win_scores", []int{5, 7, 10})
	viper.SetDefault("game.chat_max_len", 220)
	viper.SetDefault("decks.prompt_path", "decks/prompts.json")
	viper.SetDefault("decks.response_path", "decks/responses.json")

	viper.AutomaticEnv()

	if err = viper.ReadInConfig(); err != nil {
		// A missing file is fine: the defaults above describe a playable server.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, err
		}
	}

	err = viper.Unmarshal(&config)
	return
}
