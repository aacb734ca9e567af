package main

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hireloop/interviewd/internal/api"
	"github.com/hireloop/interviewd/internal/notify"
	"github.com/hireloop/interviewd/internal/repo"
	"github.com/hireloop/interviewd/pkg/environment"
	"github.com/hireloop/interviewd/pkg/errors"
)

type Config struct {
	Environment environment.Env  `yaml:"environment"`
	Mongo       repo.MongoConfig `yaml:"mongo"`
	API         api.Config       `yaml:"api"`
	Notify      notify.Config    `yaml:"notify"`

	Sweep struct {
		Every time.Duration `yaml:"every"`
	} `yaml:"sweep"`
}

func loadConfig() (*Config, error) {
	path, err := filepath.Abs("config.yaml")
	if err != nil {
		return nil, errors.WrapFail(err, "build path to config")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFail(err, "read config.yaml")
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, errors.WrapFail(err, "parse yaml")
	}

	if env := envFromFlags(); env != environment.Unknown {
		cfg.Environment = env
	}

	return &cfg, nil
}

func envFromFlags() environment.Env {
	raw := flag.String("env", "", "environment (dev, prod)")
	flag.Parse()
	return environment.FromString(*raw)
}
