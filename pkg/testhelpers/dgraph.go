package testhelpers

import (
	"context"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"example.com/fitplan/internal/knowledge"
)

// StartDgraph launches a standalone Dgraph container and applies the exercise schema.
func StartDgraph(ctx context.Context) (testcontainers.Container, string, error) {
	req := testcontainers.ContainerRequest{
		Image:        "dgraph/standalone:v23.1.0",
		ExposedPorts: []string{"8080/tcp"},
		WaitingFor: wait.ForHTTP("/health").
			WithPort("8080/tcp").
			WithStatusCodeMatcher(func(status int) bool { return status >= 200 && status < 500 }),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, "", err
	}

	host, err := container.Host(ctx)
	if err != nil {
		container.Terminate(context.Background())
		return nil, "", err
	}
	port, err := container.MappedPort(ctx, "8080/tcp")
	if err != nil {
		container.Terminate(context.Background())
		return nil, "", err
	}

	endpoint := "http://" + host + ":" + port.Port()
	src := knowledge.NewDgraphSource(endpoint, 5*time.Second)

	// Alter can fail briefly while the standalone image finishes booting.
	deadline := time.Now().Add(30 * time.Second)
	for {
		err = src.EnsureSchema(ctx)
		if err == nil || time.Now().After(deadline) {
			break
		}
		time.Sleep(time.Second)
	}
	if err != nil {
		container.Terminate(context.Background())
		return nil, "", err
	}

	return container, endpoint, nil
}
