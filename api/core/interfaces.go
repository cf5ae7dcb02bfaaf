package core

import "net/http"

type API interface {
	Start()
	Dispose() error
}

type APIEndpointHandler = func(w http.ResponseWriter, r *http.Request)

type APIEndpoint struct {
	Path       string
	Method     string
	Handler    APIEndpointHandler
	APIKeyAuth bool
}

type APIController interface {
	GetPathPrefix() string
	GetEndpoints() []*APIEndpoint
}
