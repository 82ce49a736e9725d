// Package http implements the REST API of the recipe keeper.
//
// Routes are wired on a chi router in [Handler.Init]. Middleware attaches a
// trace-scoped logger, writes access logs, handles gzip bodies, checks bearer
// tokens and throttles the recipe parsing endpoints per user. Errors returned
// by the service layer are mapped to HTTP statuses in one table.
package http
