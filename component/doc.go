// Package component defines the lifecycle contract for regkit infrastructure
// components and a registry that starts and stops them in dependency order.
package component
