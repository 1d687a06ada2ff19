// Package timezones provides a small net/http component that serves localized
// time zone option lists as JSON (for client-side selects and typeaheads) or
// as rendered option markup.
//
// The handler responds to GET and HEAD requests. The locale comes from the
// locale query parameter or is negotiated from Accept-Language; q and limit
// filter results, priority and selected shape the list the same way the
// server-side select helpers do.
package timezones
