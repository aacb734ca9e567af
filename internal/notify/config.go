package notify

import "time"

type Config struct {
	Kafka struct {
		Brokers []string `yaml:"brokers"`
		Topic   string   `yaml:"topic"`
		Group   string   `yaml:"group"`
	} `yaml:"kafka"`

	Telegram struct {
		Token        string        `yaml:"token"`
		PollInterval time.Duration `yaml:"poll_interval"`
	} `yaml:"telegram"`
}
