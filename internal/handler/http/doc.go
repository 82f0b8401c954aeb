// Package http implements the REST transport of the sales-keeper server.
//
// Requests pass through panic recovery, trace ID assignment, access logging
// and response compression. Routes under /api/customers and
// /api/payment-methods additionally require a Bearer JWT whose claims put the
// caller's user ID and role into the request context. Handlers hand that role
// to the services, which return records already projected for it: sensitive
// fields arrive in plaintext for admins and masked for everyone else.
package http
