// Package api serves payload validation over HTTP.
//
// Routes:
//
//	POST /v1/validate/{entity}  validate a single entity and return it normalized
//	POST /v1/orders             assemble a complete order request
//	GET  /health                liveness probe
//	GET  /metrics               Prometheus metrics
//
// Successful responses wrap the normalized payload as {"data": ...}. Failures
// carry {"error": {"code", "message", "details"}} where code is one of
// missing_field, invalid_value, invalid_json, unsupported_media_type,
// unknown_entity or body_too_large.
package api
