// Package config loads dashkit configuration and persists the context.
//
// Configuration is layered with koanf, later layers overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config file under the XDG config home
//  3. the project dashkit.toml (or the file named by DASHKIT_CONFIG)
//  4. DASHKIT_* environment variables
//  5. command line overrides
//
// The context dashboard lives in the project file and is written back with
// SetContext.
package config
