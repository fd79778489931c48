// Package config loads the run settings of the valveflow command.
//
// Sources, lowest precedence first:
//
//  1. built-in defaults (start AA, budgets 30 and 26, directed tunnels);
//  2. an optional YAML file;
//  3. VALVEFLOW_* variables from an optional .env file;
//  4. VALVEFLOW_* variables from the process environment.
//
// Command-line flags are applied on top by the caller. The merged result is
// checked with struct-tag validation before it is returned.
package config
