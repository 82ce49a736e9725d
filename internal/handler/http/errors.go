// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request has no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrNoUserInContext means an authenticated route ran without the auth
	// middleware.
	ErrNoUserInContext = errors.New("no user id in request context")

	// ErrInvalidPathParam is returned for non-numeric or non-positive ids in
	// the URL path.
	ErrInvalidPathParam = errors.New("invalid path parameter")

	// ErrInvalidQueryParam is returned for malformed pagination parameters.
	ErrInvalidQueryParam = errors.New("invalid query parameter")
)
