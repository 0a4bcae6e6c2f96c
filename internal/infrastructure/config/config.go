package config

import (
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env        string
	HTTPServer HTTPServer
	GRPCServer GRPCServer
	Database   Database
	Prometheus Prometheus
	Redis      Redis
	Search     Search
	Feed       Feed
	Auth       Auth
	Language   Language
}

type HTTPServer struct {
	Address      string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type GRPCServer struct {
	Address string
	Port    int
}

type Database struct {
	Username       string
	Password       string
	Host           string
	Port           string
	DbName         string
	MigrationsPath string
	MaxConns       int32
}

type Prometheus struct {
	Address string
	Port    int
}

type Redis struct {
	Address  string
	Port     int
	Password string
	DB       int
	PoolSize int
}

type Search struct {
	Enabled          bool
	Addresses        []string
	Index            string
	Timeout          time.Duration
	ProbeInterval    time.Duration
	ReindexBatchSize int
}

type Feed struct {
	PostsPerPage int
	MaxPageSize  int
}

type Auth struct {
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
}

type Language struct {
	MinConfidence float64
}

func MustLoad() *Config {
	cfg, err := Load("./config")
	if err != nil {
		log.Printf("Error reading config file: %s", err)
		os.Exit(1)
	}
	return cfg
}

// Load reads config.yaml from path. A missing file is not an error: defaults
// and MICROBLOG_* environment variables still apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)

	v.SetEnvPrefix("microblog")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	config := &Config{
		Env: v.GetString("env"),
		HTTPServer: HTTPServer{
			Address:      v.GetString("http_server.address"),
			Port:         v.GetInt("http_server.port"),
			ReadTimeout:  v.GetDuration("http_server.read_timeout"),
			WriteTimeout: v.GetDuration("http_server.write_timeout"),
		},
		GRPCServer: GRPCServer{
			Address: v.GetString("grpc_server.address"),
			Port:    v.GetInt("grpc_server.port"),
		},
		Database: Database{
			Username:       v.GetString("database.username"),
			Password:       v.GetString("database.password"),
			Host:           v.GetString("database.host"),
			Port:           v.GetString("database.port"),
			DbName:         v.GetString("database.db_name"),
			MigrationsPath: v.GetString("database.migrations_path"),
			MaxConns:       v.GetInt32("database.max_conns"),
		},
		Prometheus: Prometheus{
			Address: v.GetString("prometheus.address"),
			Port:    v.GetInt("prometheus.port"),
		},
		Redis: Redis{
			Address:  v.GetString("redis.address"),
			Port:     v.GetInt("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			PoolSize: v.GetInt("redis.pool_size"),
		},
		Search: Search{
			Enabled:          v.GetBool("search.enabled"),
			Addresses:        v.GetStringSlice("search.addresses"),
			Index:            v.GetString("search.index"),
			Timeout:          v.GetDuration("search.timeout"),
			ProbeInterval:    v.GetDuration("search.probe_interval"),
			ReindexBatchSize: v.GetInt("search.reindex_batch_size"),
		},
		Feed: Feed{
			PostsPerPage: v.GetInt("feed.posts_per_page"),
			MaxPageSize:  v.GetInt("feed.max_page_size"),
		},
		Auth: Auth{
			JWTSecret:  v.GetString("auth.jwt_secret"),
			TokenTTL:   v.GetDuration("auth.token_ttl"),
			BcryptCost: v.GetInt("auth.bcrypt_cost"),
		},
		Language: Language{
			MinConfidence: v.GetFloat64("language.min_confidence"),
		},
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "dev")

	v.SetDefault("http_server.address", "0.0.0.0")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.read_timeout", 10*time.Second)
	v.SetDefault("http_server.write_timeout", 10*time.Second)

	v.SetDefault("grpc_server.address", "0.0.0.0")
	v.SetDefault("grpc_server.port", 50055)

	v.SetDefault("database.username", "postgres")
	v.SetDefault("database.password", "admin")
	v.SetDefault("database.host", "microblog-db")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.db_name", "microblog")
	v.SetDefault("database.migrations_path", "migrations")
	v.SetDefault("database.max_conns", 20)

	v.SetDefault("prometheus.address", "0.0.0.0")
	v.SetDefault("prometheus.port", 9105)

	v.SetDefault("redis.address", "redis")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("search.enabled", true)
	v.SetDefault("search.addresses", []string{"http://elasticsearch:9200"})
	v.SetDefault("search.index", "posts")
	v.SetDefault("search.timeout", 2*time.Second)
	v.SetDefault("search.probe_interval", time.Minute)
	v.SetDefault("search.reindex_batch_size", 500)

	v.SetDefault("feed.posts_per_page", 10)
	v.SetDefault("feed.max_page_size", 50)

	v.SetDefault("auth.jwt_secret", "you-will-never-guess")
	v.SetDefault("auth.token_ttl", 24*time.Hour)
	v.SetDefault("auth.bcrypt_cost", 10)

	v.SetDefault("language.min_confidence", 0.5)
}
