package handler

import (
	"net/http"

	"github.com/sparkwave/sparkwave-login/application/port/inbound"
	"github.com/sparkwave/sparkwave-login/infrastructure/http/middleware"
)

func clientContext(r *http.Request) inbound.ClientContext {
	return inbound.ClientContext{
		IPAddress: middleware.ClientIP(r),
		UserAgent: r.UserAgent(),
	}
}
