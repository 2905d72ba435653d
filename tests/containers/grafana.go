// Package containers provides testing containers for the integration-tagged tests.
// Currently it runs a Grafana LGTM stack whose OTLP HTTP receiver accepts the spans o11y exports.
package containers

import (
	"context"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	grafanalgtm "github.com/testcontainers/testcontainers-go/modules/grafana-lgtm"
)

// Collector is a running LGTM container and the OTLP HTTP address spans should be sent to.
type Collector struct {
	Container *grafanalgtm.GrafanaLGTMContainer
	Host      string
	Port      string
}

// Cleanup terminates the LGTM container.
func (c Collector) Cleanup(t testing.TB) {
	if c.Container != nil {
		testcontainers.CleanupContainer(t, c.Container)
	}
}

// LGTM starts a Grafana LGTM container and exports OTEL_HOST and OTEL_PORT for the rest of the test.
func LGTM(t *testing.T, ctx context.Context) (collector Collector, fault error) {
	t.Helper()
	t.Log("Starting Grafana LGTM container for testing...")

	c, err := grafanalgtm.Run(
		ctx,
		"grafana/otel-lgtm:0.6.0",
		grafanalgtm.WithAdminCredentials("admin", "admin"),
	)
	if err != nil {
		t.Errorf("failed to start Grafana LGTM container: %s", err)
		return Collector{}, err
	}

	host, err := c.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}

	port, err := c.MappedPort(ctx, "4318/tcp")
	if err != nil {
		t.Fatalf("failed to get mapped port: %v", err)
	}

	t.Setenv("OTEL_HOST", host)
	t.Setenv("OTEL_PORT", port.Port())

	t.Logf("Grafana LGTM is running at %s:%s", host, port.Port())

	return Collector{Container: c, Host: host, Port: port.Port()}, nil
}
