// Package config loads and persists the trellis.json project file.
package config
