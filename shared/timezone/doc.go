// Package timezone provides timezone and date rendering utilities for the console.
//
// Usage Examples:
//
//  1. Converting a stored timestamp to the app timezone:
//     local := timezone.ToAppTime(t)
//
//  2. Rendering a stored date for a table cell:
//     timezone.FormatDate("2024-05-01", "en-US") // "5/1/2024"
//
//  3. Pre-filling a date input:
//     timezone.DateInputValue("2024-05-01T00:00:00Z") // "2024-05-01"
//
// The timezone is configured via the APP_TIMEZONE environment variable
// and is automatically initialized when the package is imported.
// Use standard IANA timezone database names for reliable cross-platform compatibility.
package timezone
