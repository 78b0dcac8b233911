// Package config defines the format-agnostic model of a list walkthrough,
// along with the Loader interface implemented by the format-specific
// adapters (HCL, YAML).
//
// The `config.Model` is the single source of truth for the walkthrough
// package. Concrete loaders live in separate packages.
package config
