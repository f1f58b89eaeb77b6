package tenant

import (
	"regexp"
	"strings"
)

// Config holds the domains used to tell tenant hosts apart from the
// marketing root and preview deployments.
type Config struct {
	// Env is the runtime environment; the localhost branch is disabled in
	// production.
	Env string
	// BaseDomain is the production apex, e.g. "platterng.com".
	BaseDomain string
	// PreviewDomain is the preview-platform suffix, e.g. "vercel.app".
	PreviewDomain string
}

// Labels that never identify a tenant on the base domain.
var reservedLabels = map[string]bool{
	"":    true,
	"www": true,
	"app": true,
}

var localhostURL = regexp.MustCompile(`https?://([^./]+)\.localhost`)

// Resolve extracts the tenant subdomain from an inbound request. It returns
// "" when the request targets the marketing root or an unrecognized host.
// Pure string parsing; safe to call per request.
func Resolve(requestURL, hostHeader string, cfg Config) string {
	hostname := stripPort(hostHeader)

	// Local development: prefer the full URL, fall back to the host header.
	// Keyed on the hostname, never the URL, so a production request that
	// merely mentions localhost in its query string is not misread.
	if cfg.Env != "production" &&
		(strings.Contains(hostname, "localhost") || strings.Contains(hostname, "127.0.0.1")) {
		if m := localhostURL.FindStringSubmatch(requestURL); m != nil {
			return m[1]
		}
		if strings.Contains(hostname, ".localhost") {
			return strings.Split(hostname, ".")[0]
		}
		return ""
	}

	// Preview deployments: tenant---branch.preview-host style hosts carry the
	// tenant as the first of at least three labels.
	if cfg.PreviewDomain != "" && hostname != cfg.PreviewDomain && strings.HasSuffix(hostname, "."+cfg.PreviewDomain) {
		labels := strings.Split(hostname, ".")
		if len(labels) >= 3 {
			return labels[0]
		}
		return ""
	}

	// Production: strip the base-domain suffix and treat reserved labels as
	// the marketing root.
	if cfg.BaseDomain == "" || hostname == cfg.BaseDomain {
		return ""
	}
	if !strings.HasSuffix(hostname, "."+cfg.BaseDomain) {
		return ""
	}
	label := strings.TrimSuffix(hostname, "."+cfg.BaseDomain)
	if reservedLabels[label] {
		return ""
	}
	return label
}

func stripPort(host string) string {
	if i := strings.IndexByte(host, ':'); i >= 0 {
		return host[:i]
	}
	return host
}
