// Package domain contains the core domain model for wingen.
//
// The domain is persistence- and rendering-agnostic: it does not depend on YAML parsing,
// SVG/PNG encoders, or the filesystem. Infra/adapters map into/from these types.
package domain
