/*
Command astrochart computes astrological charts from planetary theory
and orbital element catalogs.

Chart positions come from the VSOP87 series for the planets, the ELP
theory for the Moon, and Meeus's Pluto series.  Asteroid positions are
propagated from Keplerian elements in the Lowell Observatory astorb.dat
catalog.  House cusps use the Placidus semi-arc method, with Porphyry
division substituted inside the polar circles where Placidus is
undefined.

Usage:

	astrochart <command> [flags]

The commands:

	natal         natal chart with aspects, patterns, balances, and reading
	daily         today's horoscope against a natal chart
	transits      current transits and an exact-transit forecast
	solar-return  chart for the Sun's return to its natal longitude
	progressed    secondary progressions, one day per year of life
	relocate      natal chart rehoused at new coordinates
	synastry      interaspects between two natal charts
	compat        sun sign compatibility
	asteroid      asteroid placements, name search, and thematic scans

Configuration is read from .astrochart.yaml in the working directory or
the home directory, and from ASTROCHART_* environment variables.  The
ephemeris_dir setting must point at a directory holding the VSOP87 B
data files; astorb_path locates the asteroid catalog; database_path
locates the interpretive content database.

Locations may be given as --lat/--lon or as a place name with
--location, which is resolved through the OpenStreetMap Nominatim
service.
*/
package main
