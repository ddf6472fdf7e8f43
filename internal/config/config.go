package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// TemporalConfig holds Temporal configuration
type TemporalConfig struct {
	HostPort                           string `mapstructure:"host_port"`
	Namespace                          string `mapstructure:"namespace"`
	PipelineTaskQueue                  string `mapstructure:"pipeline_task_queue"`
	MaxConcurrentActivityExecutionSize int    `mapstructure:"max_concurrent_activity_execution_size"`
}

// NATSConfig holds NATS JetStream configuration for the render job queue
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	RenderSubject  string        `mapstructure:"render_subject"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
	RenderTimeout  time.Duration `mapstructure:"render_timeout"`
}

// PinataConfig holds pinning service credentials
type PinataConfig struct {
	APIURL       string `mapstructure:"api_url"`
	APIKey       string `mapstructure:"api_key"`
	SecretAPIKey string `mapstructure:"secret_api_key"`
	Gateway      string `mapstructure:"gateway"`
}

// EthereumConfig holds chain configuration for the metadata updater
type EthereumConfig struct {
	RPCURL          string `mapstructure:"rpc_url"`
	ChainID         int64  `mapstructure:"chain_id"`
	RegistryAddress string `mapstructure:"registry_address"`
	PrivateKey      string `mapstructure:"private_key"`
}

// StorageConfig holds local artifact directories
type StorageConfig struct {
	RenderOutputDir string `mapstructure:"render_output_dir"`
	MetadataDir     string `mapstructure:"metadata_dir"`
	SnapshotPath    string `mapstructure:"snapshot_path"`
}

// AuthConfig holds authentication configuration for admin routes
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig  `mapstructure:",squash"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Temporal    TemporalConfig `mapstructure:"temporal"`
	Pinata      PinataConfig   `mapstructure:"pinata"`
	Ethereum    EthereumConfig `mapstructure:"ethereum"`
	Auth        AuthConfig     `mapstructure:"auth"`
	ExternalURL string         `mapstructure:"external_url"`
}

// WorkerPipelineConfig holds configuration for the pipeline worker
type WorkerPipelineConfig struct {
	BaseConfig  `mapstructure:",squash"`
	Database    DatabaseConfig `mapstructure:"database"`
	Temporal    TemporalConfig `mapstructure:"temporal"`
	NATS        NATSConfig     `mapstructure:"nats"`
	Pinata      PinataConfig   `mapstructure:"pinata"`
	Ethereum    EthereumConfig `mapstructure:"ethereum"`
	Storage     StorageConfig  `mapstructure:"storage"`
	ExternalURL string         `mapstructure:"external_url"`
}

// SweeperConfig holds configuration for the metadata snapshot sweeper
type SweeperConfig struct {
	BaseConfig  `mapstructure:",squash"`
	Database    DatabaseConfig `mapstructure:"database"`
	Storage     StorageConfig  `mapstructure:"storage"`
	Interval    time.Duration  `mapstructure:"interval"`
	HTTPTimeout time.Duration  `mapstructure:"http_timeout"`
	PoolSize    int            `mapstructure:"pool_size"`
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	setDatabaseDefaults(v)
	setTemporalDefaults(v)
	setPinataDefaults(v)
	v.SetDefault("ethereum.chain_id", 1)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg APIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadWorkerPipelineConfig loads configuration for the pipeline worker
func LoadWorkerPipelineConfig(configFile string, envPath string) (*WorkerPipelineConfig, error) {
	v := configureViper("worker-pipeline", configFile, envPath)

	setDatabaseDefaults(v)
	setTemporalDefaults(v)
	setPinataDefaults(v)
	v.SetDefault("nats.stream_name", "RENDER_JOBS")
	v.SetDefault("nats.render_subject", "render.jobs")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.render_timeout", "10m")
	v.SetDefault("ethereum.chain_id", 1)
	v.SetDefault("storage.render_output_dir", "blender_output")
	v.SetDefault("storage.metadata_dir", "metadata")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg WorkerPipelineConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Pinata.APIKey == "" || cfg.Pinata.SecretAPIKey == "" {
		return nil, errors.New("pinata.api_key and pinata.secret_api_key are required")
	}

	return &cfg, nil
}

// LoadSweeperConfig loads configuration for the snapshot sweeper
func LoadSweeperConfig(configFile string, envPath string) (*SweeperConfig, error) {
	v := configureViper("sweeper", configFile, envPath)

	setDatabaseDefaults(v)
	v.SetDefault("interval", "10m")
	v.SetDefault("http_timeout", "30s")
	v.SetDefault("pool_size", 20)
	v.SetDefault("storage.snapshot_path", "all_nfts_with_metadata.json")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg SweeperConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Database.Host == "" {
		return nil, errors.New("database.host is required")
	}

	return &cfg, nil
}

func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
}

func setTemporalDefaults(v *viper.Viper) {
	v.SetDefault("temporal.host_port", "localhost:7233")
	v.SetDefault("temporal.namespace", "default")
	v.SetDefault("temporal.pipeline_task_queue", "hero-pipeline")
	v.SetDefault("temporal.max_concurrent_activity_execution_size", 20)
}

func setPinataDefaults(v *viper.Viper) {
	v.SetDefault("pinata.api_url", "https://api.pinata.cloud")
	v.SetDefault("pinata.gateway", "https://gateway.pinata.cloud")
}

func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// configureViper returns a viper instance with the config file and
// environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("HERO_FORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables.
// Required for viper to map env vars to struct fields when no config file
// exists.
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		"external_url",
		"interval",
		"http_timeout",
		"pool_size",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Temporal
		"temporal.host_port",
		"temporal.namespace",
		"temporal.pipeline_task_queue",
		"temporal.max_concurrent_activity_execution_size",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.render_subject",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"nats.render_timeout",
		// Pinata
		"pinata.api_url",
		"pinata.api_key",
		"pinata.secret_api_key",
		"pinata.gateway",
		// Ethereum
		"ethereum.rpc_url",
		"ethereum.chain_id",
		"ethereum.registry_address",
		"ethereum.private_key",
		// Storage
		"storage.render_output_dir",
		"storage.metadata_dir",
		"storage.snapshot_path",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
