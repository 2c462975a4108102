// Package config provides configuration loading, merging, and validation
// facilities for the food ordering service and its CLI client.
//
// Server configuration is assembled from multiple sources. For every field
// the first source that sets it wins:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file
//  4. Legacy DB_* / PORT environment variables
//  5. Defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the CLI client.
package config
