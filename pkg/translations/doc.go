// Package translations supplies the localized display names used for time
// zone labels.
//
// Builders only depend on the Translator interface. Keys follow the
// "time_zones.<identifier>" convention so catalogs can share files with the
// rest of an application's translations. Catalog is an in-memory
// implementation loaded from YAML files shaped like:
//
//	de:
//	  time_zones:
//	    "Pacific Time (US & Canada)": "Pazifik-Zeit (USA & Kanada)"
//
// BundleTranslator adapts a go-i18n bundle for applications that already
// manage their messages there.
package translations
