// Package config provides configuration management for animalsctl.
//
// Configuration is layered: later sources override earlier ones field by
// field, and a zero value in a file never clears a setting.
//
//  1. Default configuration (GetDefaultConfig), pointing at the public
//     Animals service.
//  2. User configuration (~/.config/animalsctl/config.yaml).
//  3. Project configuration (./.animalsctl/config.yaml).
//
// An explicit file given with --config replaces layers 2 and 3
// (LoadConfigFromPath). Command-line flags are applied on top by the caller.
//
// # Configuration Structure
//
//	api:
//	  baseURL: https://animals.juanfrausto.com/api/
//	  timeout: 15s
//	  userAgent: animalsctl
//	  requestsPerSecond: 0
//	ui:
//	  startTab: animals        # animals | environments
//	  colorMode: auto          # auto | dark | light
//	mockAPI:
//	  host: localhost
//	  port: 8090
//	  fixtures: ""             # YAML fixture file
//	  dbPath: ""               # bolt database; empty keeps data in memory
//	mcp:
//	  transport: stdio         # stdio | sse
//	  host: localhost
//	  port: 8091
//
// Call Validate after loading and applying flags.
package config
