// Package properties reads flat key=value resources in the Java properties
// format and returns them as plain string maps. It knows nothing about how
// the values are shared or cached; see package settings for that.
package properties
