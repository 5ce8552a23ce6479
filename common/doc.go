// Package common provides shared constants, types, utilities, and interfaces
// used throughout the WG Menu Bar application.
//
// This package serves as the foundation for cross-cutting concerns:
//
//   - Constants: Application-wide constants like cache TTLs, file names, and config directories
//   - Errors: Sentinel errors for consistent error handling across packages
//   - Interfaces: Abstractions for preference storage, action history, and logging
//   - Logger: Leveled logging with optional file output and rotation
//   - Utils: Common utility functions for directories and string lists
//
// # Usage
//
// Import the package to access shared functionality:
//
//	import "wg-menubar/common"
//
//	// Use constants
//	ttl := common.ConfigCacheTTL
//
//	// Use logger
//	common.LogInfo("Bringing up tunnel %s", name)
//
//	// Check errors
//	if errors.Is(err, common.ErrConfigLoad) {
//	    // Handle a broken config file
//	}
package common
