package ratelimit

import (
	"net/http"
	"strings"
)

// MatchEndpoint resolves the rate tier for a request. An exact path and
// method entry wins outright; otherwise the longest "/"-terminated prefix
// entry for the method applies, so a narrow tier like "/admin/drives/" can
// sit inside a broader one. Health checks are never throttled. A nil result
// means the caller's default tier applies.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == http.MethodGet {
		return &EndpointConfig{}
	}

	var prefix *EndpointConfig
	for i := range configs {
		cfg := &configs[i]
		if cfg.Method != method {
			continue
		}
		if cfg.Path == path {
			return cfg
		}
		if !strings.HasSuffix(cfg.Path, "/") || !strings.HasPrefix(path, cfg.Path) {
			continue
		}
		if prefix == nil || len(cfg.Path) > len(prefix.Path) {
			prefix = cfg
		}
	}
	return prefix
}
