// Package bazi converts a Gregorian birth date and an optional two-hour time
// bracket into the four pillars (year, month, day, hour) of a Bazi chart.
//
// Every table in the package is fixed at compile time and every function is
// pure: the same inputs always produce the same Profile, with no I/O and no
// shared mutable state.
//
// Two simplifications are kept on purpose so that stored profiles stay
// comparable across versions:
//
//   - the year boundary ("start of spring") is the fixed calendar cutoff of
//     February 4th rather than the true solar term;
//   - the month branch is a fixed offset of the calendar month rather than a
//     solar-month boundary.
//
// Changing either one changes previously computed charts.
package bazi
