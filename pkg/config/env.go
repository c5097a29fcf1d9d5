package config

// EnvPrefix is handed to envconfig; every field carries an explicit envconfig tag.
const EnvPrefix = "STOREFRONT"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	PersistenceDriverMemory   = "memory"
	PersistenceDriverSQLite   = "sqlite"
	PersistenceDriverPostgres = "postgres"
	PersistenceDriverRedis    = "redis"
)

const (
	EnvAppEnv            = "STOREFRONT_APP_ENV"
	EnvPort              = "STOREFRONT_APP_PORT"
	EnvLogLevel          = "STOREFRONT_LOG_LEVEL"
	EnvPersistenceDriver = "STOREFRONT_PERSISTENCE_DRIVER"
	EnvCartKey           = "STOREFRONT_CART_KEY"
	EnvWishlistKey       = "STOREFRONT_WISHLIST_KEY"
	EnvSQLitePath        = "STOREFRONT_SQLITE_PATH"
	EnvDBDSN             = "STOREFRONT_DB_DSN"
	EnvDBHost            = "STOREFRONT_DB_HOST"
	EnvDBUser            = "STOREFRONT_DB_USER"
	EnvDBName            = "STOREFRONT_DB_NAME"
	EnvRedisURL          = "STOREFRONT_REDIS_URL"
	EnvRedisAddr         = "STOREFRONT_REDIS_ADDR"
	EnvCatalogAPIBase    = "STOREFRONT_CATALOG_API_BASE"
)

var dbPartEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
