// Package server exposes the formatters over HTTP.
//
//	POST /v1/intcomma     {"value": "1234567", "ndigits": 2}
//	POST /v1/intword      {"value": [1e9, "12400"], "format": "%.2f"}
//	POST /v1/naturalsize  {"value": 3000, "binary": true}
//	GET  /healthz
//	GET  /metrics
//
// Responses are {"result": ...} where the result mirrors the shape of
// "value": a string for a scalar and an array for an array. Numbers are
// decoded as their literal text so that large integers keep every digit.
package server
