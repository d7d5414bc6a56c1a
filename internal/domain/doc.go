// Package domain contains the core domain model for shiprate.
//
// The domain is transport-agnostic: it does not depend on the carrier wire
// format, net/http or the filesystem. The carrier package and infra adapters
// map into/from these types.
package domain
