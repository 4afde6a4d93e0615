package constants

import "time"

// API endpoint constants.
const (
	// BaseURI is the fixed base URL for the campaign finance API.
	BaseURI = "http://api.nytimes.com/svc/elections/us/v3/finances"

	// APIKeyParam is the query-string parameter that carries the API key.
	APIKeyParam = "api-key"

	// APIKeyEnvVar is the environment variable the facade reads when no
	// explicit key is configured.
	APIKeyEnvVar = "NYT_CAMPFIN_API_KEY"

	// CurrentCycle is the default two-year election cycle used when a call
	// does not override it.
	CurrentCycle = 2012

	// PathSuffix is appended to every endpoint path template.
	PathSuffix = ".json"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry limits applied when retries are explicitly enabled.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Cache constants.
const (
	// DefaultCacheSize is the default cache size limit.
	DefaultCacheSize = 1000

	// DefaultCacheTTL is the expiry window for cached GET responses.
	DefaultCacheTTL = 5 * time.Minute
)

// Output format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"

	// JSONIndentSize is the number of spaces for JSON and YAML indentation.
	JSONIndentSize = 2
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)
