// Package config holds the widget configuration consumed by the form
// pipeline together with loaders for configuration and field override
// documents.
package config
