package config

const (
	// EnvPrefix is the prefix shared by every KisanBazaar environment variable.
	EnvPrefix = "kisanbazaar"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "KISANBAZAAR_DB_DSN"
	EnvDBHost = "KISANBAZAAR_DB_HOST"
	EnvDBUser = "KISANBAZAAR_DB_USER"
	EnvDBName = "KISANBAZAAR_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
