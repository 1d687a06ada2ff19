// Package zoneselect builds the option entries behind a localized time zone
// select: a full list ordered by UTC offset, an optional priority section in
// caller order, and the separators between them.
//
// Builders are pure: every call takes the active locale and translator
// explicitly, allocates its result and shares nothing mutable, so a Builder
// can serve concurrent requests.
package zoneselect
