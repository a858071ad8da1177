package store

import "errors"

// Sentinel errors returned by route sources. Callers should use [errors.Is]
// to match against these values.
var (
	// ErrNoRoutes is returned when a route source holds no routes at all.
	ErrNoRoutes = errors.New("no routes configured")

	// ErrReadingDeclarativeConfig is returned when the declarative routes
	// file cannot be read.
	ErrReadingDeclarativeConfig = errors.New("error reading declarative config")

	// ErrParsingDeclarativeConfig is returned when the declarative routes
	// file is not valid YAML or does not match the expected layout.
	ErrParsingDeclarativeConfig = errors.New("error parsing declarative config")

	// ErrUnsupportedFormatVersion is returned when the declarative file
	// declares a _format_version this build does not understand.
	ErrUnsupportedFormatVersion = errors.New("unsupported declarative format version")

	// ErrUnsupportedDSN is returned when a database DSN matches no known driver.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrDecodingColumn is returned when a JSON-encoded column (paths,
	// methods, plugin config) holds malformed data.
	ErrDecodingColumn = errors.New("failed to decode column value")
)
