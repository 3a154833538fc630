package middleware

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

var securityHeaders = [][2]string{
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY"},
	{"Referrer-Policy", "no-referrer"},
	{"Cache-Control", "no-store"},
	{"Strict-Transport-Security", "max-age=63072000; includeSubDomains"},
}

// SecurityHeaders sets the response headers every API reply carries
func SecurityHeaders(next http.Handler) http.Handler {
	h := next
	for i := len(securityHeaders) - 1; i >= 0; i-- {
		h = chimw.SetHeader(securityHeaders[i][0], securityHeaders[i][1])(h)
	}
	return h
}
