// Package artext extracts the readable title and body of news and blog
// articles from rendered web pages. Pages come from several publishing
// platforms whose markup is inconsistent and cluttered with subscription
// prompts, navigation and share buttons.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. The extraction engine lives in extract/ and the
// implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, rod/, sqlite/).
package artext
