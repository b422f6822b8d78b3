// Package domain defines the lead records captured by the Orgainse website.
//
// Types in this package are pure value objects with no behavior, no database
// handles, and no HTTP concerns. They are the shared language between the
// validators, the scoring engines, the lead service, and the store.
//
// Rules for this package:
//   - No imports from other internal/ packages
//   - No store clients, no http.Request, no context.Context in struct fields
//   - JSON/BSON tags are allowed (they're metadata, not behavior)
//   - Records are write-once: nothing mutates them after insertion
//   - Constants and enums belong here
package domain

// Collection names, one append-only collection per entity.
const (
	CollectionNewsletter  = "newsletter_subscriptions"
	CollectionContacts    = "contact_messages"
	CollectionAssessments = "ai_assessments"
	CollectionROI         = "roi_calculations"
)

// Source tags identify the endpoint a record came from.
const (
	SourceNewsletter = "newsletter_signup"
	SourceContact    = "contact_form"
	SourceAssessment = "ai_assessment"
	SourceROI        = "roi_calculator"
)

// DefaultRegion is stored when a form omits the visitor's region.
const DefaultRegion = "Global"
