package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App         AppConfig
	Persistence PersistenceConfig
	DB          DBConfig
	Redis       RedisConfig
	Catalog     CatalogConfig
	Metrics     MetricsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Persistence.Driver = strings.ToLower(strings.TrimSpace(cfg.Persistence.Driver))
	if err := cfg.Persistence.validate(); err != nil {
		return nil, err
	}
	if cfg.Persistence.Driver == PersistenceDriverPostgres {
		if err := cfg.DB.ensureDSN(); err != nil {
			return nil, err
		}
	}
	if cfg.Persistence.Driver == PersistenceDriverRedis && cfg.Redis.URL == "" && cfg.Redis.Address == "" {
		return nil, fmt.Errorf("%s or %s is required for the redis persistence driver", EnvRedisURL, EnvRedisAddr)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STOREFRONT_APP_ENV" required:"true"`
	Port         string `envconfig:"STOREFRONT_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"STOREFRONT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STOREFRONT_LOG_WARN_STACK" default:"false"`
	// CORSOrigins is a comma separated list of front end origins.
	CORSOrigins []string `envconfig:"STOREFRONT_CORS_ORIGINS"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// PersistenceConfig selects the durable store behind the cart and wishlist records.
type PersistenceConfig struct {
	Driver       string        `envconfig:"STOREFRONT_PERSISTENCE_DRIVER" default:"sqlite"`
	Namespace    string        `envconfig:"STOREFRONT_PERSISTENCE_NAMESPACE" default:"sf"`
	SessionID    string        `envconfig:"STOREFRONT_SESSION_ID"`
	CartKey      string        `envconfig:"STOREFRONT_CART_KEY" default:"cart-items-v1"`
	WishlistKey  string        `envconfig:"STOREFRONT_WISHLIST_KEY" default:"wishlist-items-v1"`
	SQLitePath   string        `envconfig:"STOREFRONT_SQLITE_PATH" default:"storefront.db"`
	WriteTimeout time.Duration `envconfig:"STOREFRONT_PERSISTENCE_WRITE_TIMEOUT" default:"2s"`
	AutoMigrate  bool          `envconfig:"STOREFRONT_PERSISTENCE_AUTO_MIGRATE" default:"true"`
}

func (p PersistenceConfig) validate() error {
	switch p.Driver {
	case PersistenceDriverMemory, PersistenceDriverSQLite, PersistenceDriverPostgres, PersistenceDriverRedis:
	default:
		return fmt.Errorf("unsupported %s %q", EnvPersistenceDriver, p.Driver)
	}
	if strings.TrimSpace(p.CartKey) == "" || strings.TrimSpace(p.WishlistKey) == "" {
		return fmt.Errorf("%s and %s must not be empty", EnvCartKey, EnvWishlistKey)
	}
	if p.CartKey == p.WishlistKey {
		return fmt.Errorf("%s and %s must differ", EnvCartKey, EnvWishlistKey)
	}
	return nil
}

type DBConfig struct {
	DSN string `envconfig:"STOREFRONT_DB_DSN"`

	Host     string `envconfig:"STOREFRONT_DB_HOST"`
	Port     int    `envconfig:"STOREFRONT_DB_PORT" default:"5432"`
	User     string `envconfig:"STOREFRONT_DB_USER"`
	Password string `envconfig:"STOREFRONT_DB_PASSWORD"`
	Name     string `envconfig:"STOREFRONT_DB_NAME"`
	SSLMode  string `envconfig:"STOREFRONT_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"STOREFRONT_DB_MAX_OPEN_CONNS" default:"5"`
	MaxIdleConns    int           `envconfig:"STOREFRONT_DB_MAX_IDLE_CONNS" default:"2"`
	ConnMaxLifetime time.Duration `envconfig:"STOREFRONT_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"STOREFRONT_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"STOREFRONT_REDIS_URL"`
	Address      string        `envconfig:"STOREFRONT_REDIS_ADDR"`
	Password     string        `envconfig:"STOREFRONT_REDIS_PASSWORD"`
	DB           int           `envconfig:"STOREFRONT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"STOREFRONT_REDIS_POOL_SIZE" default:"4"`
	MinIdleConns int           `envconfig:"STOREFRONT_REDIS_MIN_IDLE_CONNS" default:"1"`
	DialTimeout  time.Duration `envconfig:"STOREFRONT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"STOREFRONT_REDIS_READ_TIMEOUT" default:"2s"`
	WriteTimeout time.Duration `envconfig:"STOREFRONT_REDIS_WRITE_TIMEOUT" default:"2s"`
	RecordTTL    time.Duration `envconfig:"STOREFRONT_REDIS_RECORD_TTL" default:"0"`
}

// CatalogConfig points at the remote product API. An empty BaseURL serves the
// static dataset only.
type CatalogConfig struct {
	BaseURL string        `envconfig:"STOREFRONT_CATALOG_API_BASE"`
	Timeout time.Duration `envconfig:"STOREFRONT_CATALOG_TIMEOUT" default:"5s"`
}

type MetricsConfig struct {
	Enabled bool   `envconfig:"STOREFRONT_METRICS_ENABLED" default:"true"`
	Path    string `envconfig:"STOREFRONT_METRICS_PATH" default:"/metrics"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	values := map[string]string{
		EnvDBHost: db.Host,
		EnvDBUser: db.User,
		EnvDBName: db.Name,
	}
	for _, env := range dbPartEnvVars {
		if values[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}

	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
