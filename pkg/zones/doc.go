// Package zones holds the time zone reference table used to build select
// options: a fixed, ordered list of display identifiers mapped to IANA
// locations and standard UTC offsets.
//
// The default table mirrors the zone list web frameworks commonly ship for
// form helpers and is embedded from data/zones.yaml. Applications can inject
// their own table with LoadTable or NewTable.
package zones
