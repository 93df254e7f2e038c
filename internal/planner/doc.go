// Package planner holds the ordering and grouping rules behind the trip
// views: the trip-day range, the per-day itinerary, the categorized packing
// list and the trip list tabs.
//
// Every function here is a pure transformation over already-loaded records.
// None of them return errors: absent dates and unknown categories degrade to
// a deterministic fallback (own bucket, sort last) instead of failing.
package planner
