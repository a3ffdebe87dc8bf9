// Package articlecheck fetches a web article, isolates its readable content
// and asks a language model for two independent assessments of it: one for
// SEO quality and one for factual accuracy. Cited sources in both
// assessments are checked for liveness before they are returned.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., readability/, openai/, gin/).
package articlecheck
