// Package tzselect renders localized time zone selects for server-rendered
// forms.
//
// A Helper combines a zone table, a translator and a renderer and offers
// three entry points:
//
//	Select            bound to an attribute of a model value
//	SelectTag         bound to a plain field name and value
//	OptionsForSelect  the option tags alone, for manual embedding
//
// Labels read "Amsterdam (GMT+01:00)". Priority zones are listed first in the
// order given, followed by a disabled separator and the full list sorted by
// offset. Zones without a translation for the locale are left out.
package tzselect
