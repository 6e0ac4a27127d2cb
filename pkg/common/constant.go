package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyNetDiagDBType      string = "NETDIAG_DB_TYPE"
	EnvKeyNetDiagDbPath      string = "NETDIAG_DB_PATH"
	EnvKeyNetDiagPostgresDSN string = "NETDIAG_POSTGRES_DSN"

	EnvKeyNetDiagHttpHostPort string = "NETDIAG_HTTP_HOST_PORT"
	EnvKeyNetDiagGrpcHostPort string = "NETDIAG_GRPC_HOST_PORT"

	EnvKeyNetDiagDefaultRate  string = "NETDIAG_DEFAULT_RATE"
	EnvKeyNetDiagDefaultBurst string = "NETDIAG_DEFAULT_BURST"

	EnvKeyNetDiagTowersFile string = "NETDIAG_TOWERS_FILE"

	EnvKeyNetDiagKafkaBrokers string = "NETDIAG_KAFKA_BROKERS"
	EnvKeyNetDiagKafkaTopic   string = "NETDIAG_KAFKA_TOPIC"

	EnvKeyNetDiagPublicBaseURL string = "NETDIAG_PUBLIC_BASE_URL"

	EnvKeyNetDiagLogDir string = "NETDIAG_LOG_DIR"

	LoggerNameNetDiagCore      string = "netdiag_core"
	LoggerNameRestfulServer    string = "restful_server"
	LoggerNameGrpcServer       string = "grpc_server"
	LoggerNameReport           string = "report"
	LoggerFieldNetDiagCategory string = "category"
	LoggerCategoryDiagnosis    string = "diagnosis"
	LoggerCategoryHistory      string = "history"
	LoggerCategoryEvents       string = "events"
)
