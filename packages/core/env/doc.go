// Package env handles environment variables for graphspec.
//
// It provides functionality for:
//   - Loading environment files (.env, .env.local, etc.)
//   - Expanding ${VAR} references in configuration and expectation files
//
// Credentials such as database passwords are normally kept out of
// expectation files and supplied through the environment.
package env
