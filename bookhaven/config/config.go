package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/Astemirdum/bookhaven/pkg/kafka"
	"github.com/Astemirdum/bookhaven/pkg/kvstore"
	"github.com/Astemirdum/bookhaven/pkg/logger"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// FileEnv names the optional YAML file read before the environment.
const FileEnv = "BOOKHAVEN_CONFIG"

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"BOOKHAVEN_HTTP_HOST"`
	Port         string        `yaml:"port" envconfig:"BOOKHAVEN_HTTP_PORT"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE"`
}

type App struct {
	DateLayout         string `yaml:"dateLayout" envconfig:"DATE_LAYOUT"`
	AttachmentMaxBytes int64  `yaml:"attachmentMaxBytes" envconfig:"ATTACHMENT_MAX_BYTES"`
}

type Config struct {
	Server HTTPServer     `yaml:"server"`
	Store  kvstore.Config `yaml:"store"`
	Kafka  kafka.Config   `yaml:"kafka"`
	Log    logger.Log     `yaml:"log"`
	App    App            `yaml:"app"`

	file string
}

func defaultConfig() Config {
	return Config{
		Server: HTTPServer{
			Host:         "0.0.0.0",
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		Store: kvstore.Config{
			Driver: kvstore.DriverSQLite,
			DSN:    "bookhaven.db",
		},
		Kafka: kafka.Config{
			Addrs: []string{"localhost:9092"},
			Topic: kafka.RecordsTopic,
		},
		Log: logger.Log{LogLevel: zapcore.InfoLevel},
		App: App{
			DateLayout:         "1/2/2006",
			AttachmentMaxBytes: 5 << 20,
		},
	}
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config once: defaults, options, the YAML file, then the environment.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		config, err := Load(ops...)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

// Load builds a fresh Config without touching the process-wide one.
func Load(ops ...Option) (Config, error) {
	config := defaultConfig()
	for _, op := range ops {
		op(&config)
	}
	if config.file == "" {
		config.file = os.Getenv(FileEnv)
	}
	if config.file != "" {
		if err := readFile(config.file, &config); err != nil {
			return Config{}, err
		}
	}
	if err := envconfig.Process("", &config); err != nil {
		return Config{}, errors.Wrap(err, "envconfig")
	}
	return config, nil
}

func readFile(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read config file")
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return errors.Wrapf(err, "parse %s", path)
	}
	return nil
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Fprintln(os.Stderr, string(jscfg))
}
