// Package api implements the HTTP query surface used in serve mode.
//
// Routes:
//
//	GET  /api/v1/health            registry status and scenario count
//	GET  /api/v1/scenarios         every evaluated scenario, in file order
//	GET  /api/v1/scenarios/{name}  one scenario, 404 if unknown
//	POST /api/v1/wage-growth       {beta, employer_share, delta_ssc} → {reduction, impact}
//	POST /api/v1/sensitivity       {beta, employer_share, delta_range} → {points}
//	GET  /metrics                  Prometheus text exposition of the registry
//
// Request bodies are decoded into untyped values and passed through
// wagegrowth's *Any functions, so a string where a number belongs or a scalar
// delta_range is reported as 400 with the validation message.
package api
