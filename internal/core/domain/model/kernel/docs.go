// Package kernel contains shared value objects used across the domain model.
// Value objects here are immutable, validated at construction, and safe for
// concurrent use.
package kernel
