// Package countries is the web front end over the merged record set.
//
// Routes:
//
//	GET  /                    HTML view with filter form, table and statistics
//	GET  /refresh             reload sources, then redirect to /
//	GET  /countries           JSON listing {count, countries, stats, warnings, summary}
//	GET  /countries/stats     statistics of the filtered set, null when empty
//	GET  /countries/export    filtered set as a CSV download
//	POST /countries/export    upload the filtered set to object storage (?object=)
//	POST /countries/refresh   reload sources and return the load summary
//
// Every listing route accepts name, exact, continent, min_population,
// max_population, min_area, max_area, sort and asc; sort defaults to name
// ascending. The first request triggers the initial load when the store is
// still empty. The /countries group is
// guarded by the API key when one is configured.
package countries
