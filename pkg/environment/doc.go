// Package environment names the deployment environment the service runs in
// and carries it through request contexts.
//
// Parse accepts the long names and their short aliases ("prod", "stage",
// "dev"); anything else is treated as Development. Middleware stores the
// environment on every request so handlers can branch on it with
// FromContext or IsProduction.
package environment
