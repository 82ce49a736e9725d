// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated means neither an HTTP nor a gRPC address is
// configured, so the process would have nothing to serve.
var errNoHandlersAreCreated = errors.New("no handlers are created")
