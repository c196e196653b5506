// Package traefik provides pure functions for generating Traefik reverse proxy labels.
//
// This package contains the functional core logic for rendering the Docker
// labels that configure Traefik routing for a Coolify application. All
// functions are pure (no I/O, no side effects) and return labels in a stable
// order so the rendered configuration is reproducible.
//
// # Functions
//
//   - MiddlewareLabels: Global middleware declarations (gzip, redirect, buffering)
//   - RouterLabels: Labels for one HTTP or HTTPS router
//   - ServicePortLabel: Load balancer port for a service
//
// # Usage
//
//	labels := traefik.MiddlewareLabels()
//	labels = append(labels, traefik.RouterLabels(traefik.Router{
//	    Name:         traefik.RouterName("https", 2, appID),
//	    EntryPoint:   traefik.EntryPointHTTPS,
//	    Middleware:   traefik.MiddlewareGzip,
//	    Host:         "app.vrhotelo.com",
//	    CertResolver: "letsencrypt",
//	})...)
package traefik
