// Package cueprint wraps the cueprint CLI, the metadata reader for CUE
// sheets. All lookups degrade to zero values on failure: metadata
// absence omits a tag, it never aborts a conversion.
package cueprint
