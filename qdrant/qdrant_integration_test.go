package qdrant

import (
	"context"
	"fmt"
	"net"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/embedhub/vectorgate/vectorstore"
)

// QdrantContainer represents a Qdrant container for testing
type QdrantContainer struct {
	testcontainers.Container
	Host string
	Port string
}

// setupQdrantContainer sets up a Qdrant container for testing
func setupQdrantContainer(ctx context.Context) (*QdrantContainer, error) {
	// Get a random free port
	port, err := getFreePort()
	if err != nil {
		return nil, fmt.Errorf("could not get free port: %w", err)
	}

	portStr := fmt.Sprintf("%d", port)
	portBindings := nat.PortMap{
		"6334/tcp": []nat.PortBinding{{HostPort: portStr}},
	}

	req := testcontainers.ContainerRequest{
		Image: "qdrant/qdrant:v1.11.0",
		Env: map[string]string{
			"QDRANT__SERVICE__GRPC_PORT": "6334",
		},
		ExposedPorts: []string{"6334/tcp"},
		HostConfigModifier: func(cfg *container.HostConfig) {
			cfg.PortBindings = portBindings
		},
		WaitingFor: wait.ForListeningPort("6334/tcp").WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start qdrant container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get host: %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, "6334")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get mapped port: %w", err)
	}

	portStr = mappedPort.Port()

	err = waitForQdrantReady(host, portStr, 30*time.Second)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("qdrant container not ready: %w", err)
	}

	return &QdrantContainer{
		Container: container,
		Host:      host,
		Port:      portStr,
	}, nil
}

// getFreePort gets a free port from the OS
func getFreePort() (int, error) {
	addr, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}
	defer func(addr net.Listener) {
		err := addr.Close()
		if err != nil {
			fmt.Printf("Failed to close listener: %v", err)
		}
	}(addr)

	return addr.Addr().(*net.TCPAddr).Port, nil
}

// waitForQdrantReady attempts to connect to Qdrant until it's ready or times out
func waitForQdrantReady(host, port string, timeout time.Duration) error {
	startTime := time.Now()
	for {
		if time.Since(startTime) > timeout {
			return fmt.Errorf("timed out waiting for Qdrant to be ready after %s", timeout)
		}

		conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, port), 2*time.Second)
		if err == nil {
			_ = conn.Close()
			// Additional wait to ensure the service is fully ready
			time.Sleep(2 * time.Second)
			return nil
		}

		time.Sleep(500 * time.Millisecond)
	}
}

// TestMain sets up the testing environment
func TestMain(m *testing.M) {
	code := m.Run()
	os.Exit(code)
}

// TestQdrantWithFXModule exercises the client end to end against a real
// Qdrant instance, wired through the FX module the way an application
// would consume it.
func TestQdrantWithFXModule(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	containerInstance, err := setupQdrantContainer(ctx)
	require.NoError(t, err)
	defer func() {
		if err := containerInstance.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
	}()

	t.Logf("Using Qdrant on %s:%s", containerInstance.Host, containerInstance.Port)

	portNum, err := strconv.Atoi(containerInstance.Port)
	require.NoError(t, err)

	var client *Client
	var svc vectorstore.Service

	app := fxtest.New(t,
		fx.Provide(
			func() *Config {
				cfg := FromHost(containerInstance.Host).WithPort(portNum)
				cfg.CheckCompatibility = false
				return cfg
			},
		),
		FXModule,
		fx.Populate(&client, &svc),
	)

	err = app.Start(ctx)
	require.NoError(t, err)
	defer func() { _ = app.Stop(ctx) }()

	require.NotNil(t, client)
	require.NotNil(t, svc)

	// The OnStart hook already pinged; a second ping must also pass.
	require.NoError(t, client.Ping(ctx))

	t.Run("EnsureCollectionRecreates", func(t *testing.T) {
		const name = "fruit_knowledge"

		err := svc.EnsureCollection(ctx, name, 4, vectorstore.DistanceCosine)
		require.NoError(t, err)

		exists, err := svc.CollectionExists(ctx, name)
		require.NoError(t, err)
		assert.True(t, exists)

		err = svc.Upsert(ctx, name, []vectorstore.Point{
			{ID: "1", Vector: []float32{0.1, 0.2, 0.3, 0.4}, Payload: map[string]any{"name": "apple"}},
		})
		require.NoError(t, err)

		// Recreating must drop all previous points.
		err = svc.EnsureCollection(ctx, name, 4, vectorstore.DistanceCosine)
		require.NoError(t, err)

		points, err := svc.Retrieve(ctx, name, []string{"1"})
		require.NoError(t, err)
		assert.Empty(t, points)

		info, err := svc.GetCollection(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, uint64(4), info.Dimension)
		assert.Equal(t, vectorstore.DistanceCosine, info.Distance)
	})

	t.Run("EnsureAbsent", func(t *testing.T) {
		const name = "disposable"
		require.NoError(t, svc.EnsureCollection(ctx, name, 4, vectorstore.DistanceCosine))

		require.NoError(t, svc.EnsureAbsent(ctx, name))

		exists, err := svc.CollectionExists(ctx, name)
		require.NoError(t, err)
		assert.False(t, exists)

		// Absent already; must be a no-op, not an error.
		require.NoError(t, svc.EnsureAbsent(ctx, name))
	})

	t.Run("CreateCollectionIfMissing", func(t *testing.T) {
		const name = "keep_existing"
		require.NoError(t, svc.EnsureCollection(ctx, name, 4, vectorstore.DistanceCosine))
		require.NoError(t, svc.Upsert(ctx, name, []vectorstore.Point{
			{ID: "9", Vector: []float32{1, 0, 0, 0}},
		}))

		// Must not recreate, so the point survives.
		require.NoError(t, svc.CreateCollectionIfMissing(ctx, name, 4, vectorstore.DistanceCosine))

		points, err := svc.Retrieve(ctx, name, []string{"9"})
		require.NoError(t, err)
		assert.Len(t, points, 1)
	})

	t.Run("UpsertRetrieveRoundTrip", func(t *testing.T) {
		const name = "round_trip"
		require.NoError(t, svc.EnsureCollection(ctx, name, 4, vectorstore.DistanceCosine))

		want := vectorstore.Point{
			ID:     "42",
			Vector: []float32{0.5, 0.5, 0.5, 0.5},
			Payload: map[string]any{
				"title": "sample",
				"year":  int64(2024),
			},
		}
		require.NoError(t, svc.Upsert(ctx, name, []vectorstore.Point{want}))

		// Missing ids are omitted, not errors.
		points, err := svc.Retrieve(ctx, name, []string{"42", "43"})
		require.NoError(t, err)
		require.Len(t, points, 1)
		assert.Equal(t, want.ID, points[0].ID)
		assert.Equal(t, want.Payload["title"], points[0].Payload["title"])
		assert.Equal(t, want.Payload["year"], points[0].Payload["year"])
		assert.Len(t, points[0].Vector, 4)
	})

	t.Run("SearchOrderingAndPagination", func(t *testing.T) {
		const name = "fruits"
		require.NoError(t, svc.EnsureCollection(ctx, name, 4, vectorstore.DistanceCosine))

		require.NoError(t, svc.Upsert(ctx, name, []vectorstore.Point{
			{ID: "1", Vector: []float32{0.9, 0.1, 0.1, 0.1}, Payload: map[string]any{"name": "apple", "color": "red"}},
			{ID: "2", Vector: []float32{0.1, 0.9, 0.1, 0.1}, Payload: map[string]any{"name": "banana", "color": "yellow"}},
			{ID: "3", Vector: []float32{0.85, 0.15, 0.1, 0.1}, Payload: map[string]any{"name": "cherry", "color": "red"}},
		}))
		time.Sleep(1 * time.Second) // allow indexing

		results, err := svc.Search(ctx, vectorstore.SearchRequest{
			CollectionName: name,
			Vector:         []float32{0.9, 0.1, 0.1, 0.1},
			Limit:          3,
		})
		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, "1", results[0].ID)
		for i := 1; i < len(results); i++ {
			assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
		}

		// Offset skips the best hit.
		paged, err := svc.Search(ctx, vectorstore.SearchRequest{
			CollectionName: name,
			Vector:         []float32{0.9, 0.1, 0.1, 0.1},
			Limit:          2,
			Offset:         1,
		})
		require.NoError(t, err)
		require.NotEmpty(t, paged)
		assert.Equal(t, results[1].ID, paged[0].ID)

		// Payload filter restricts candidates.
		filtered, err := svc.Search(ctx, vectorstore.SearchRequest{
			CollectionName: name,
			Vector:         []float32{0.9, 0.1, 0.1, 0.1},
			Limit:          10,
			Filter: &vectorstore.Filter{
				Must: []vectorstore.Condition{
					vectorstore.MatchCondition{Field: "color", Value: "red"},
				},
			},
		})
		require.NoError(t, err)
		require.Len(t, filtered, 2)
		for _, r := range filtered {
			assert.Equal(t, "red", r.Payload["color"])
		}
	})

	t.Run("NearestNeighborScenario", func(t *testing.T) {
		const name = "nn_scenario"
		require.NoError(t, svc.EnsureCollection(ctx, name, 4, vectorstore.DistanceCosine))

		require.NoError(t, svc.Upsert(ctx, name, []vectorstore.Point{
			{ID: "1", Vector: []float32{1, 0, 0, 0}},
			{ID: "2", Vector: []float32{0, 1, 0, 0}},
			{ID: "3", Vector: []float32{0, 0, 1, 0}},
			{ID: "4", Vector: []float32{0, 0, 0, 1}},
		}))
		time.Sleep(1 * time.Second)

		results, err := svc.Search(ctx, vectorstore.SearchRequest{
			CollectionName: name,
			Vector:         []float32{0.95, 0.05, 0, 0},
			Limit:          2,
		})
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "1", results[0].ID)
		assert.GreaterOrEqual(t, results[0].Score, results[1].Score)
	})

	t.Run("MinShouldFilter", func(t *testing.T) {
		const name = "min_should"
		require.NoError(t, svc.EnsureCollection(ctx, name, 4, vectorstore.DistanceCosine))

		require.NoError(t, svc.Upsert(ctx, name, []vectorstore.Point{
			{ID: "1", Vector: []float32{1, 0, 0, 0}, Payload: map[string]any{"tag": "a"}},
			{ID: "2", Vector: []float32{0, 1, 0, 0}, Payload: map[string]any{"tag": "b"}},
			{ID: "3", Vector: []float32{0, 0, 1, 0}, Payload: map[string]any{"tag": "c"}},
		}))
		time.Sleep(1 * time.Second)

		// Either should-condition suffices with MinShould=1.
		results, err := svc.Search(ctx, vectorstore.SearchRequest{
			CollectionName: name,
			Vector:         []float32{1, 1, 1, 1},
			Limit:          10,
			Filter: &vectorstore.Filter{
				Should: []vectorstore.Condition{
					vectorstore.MatchCondition{Field: "tag", Value: "a"},
					vectorstore.MatchCondition{Field: "tag", Value: "b"},
				},
				MinShould: 1,
			},
		})
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("ScrollToExhaustion", func(t *testing.T) {
		const name = "scrollable"
		require.NoError(t, svc.EnsureCollection(ctx, name, 4, vectorstore.DistanceCosine))

		var batch []vectorstore.Point
		for i := 1; i <= 25; i++ {
			batch = append(batch, vectorstore.Point{
				ID:     strconv.Itoa(i),
				Vector: []float32{float32(i), 0, 0, 0},
			})
		}
		require.NoError(t, svc.Upsert(ctx, name, batch))

		seen := make(map[string]bool)
		cursor := ""
		pages := 0
		for {
			page, err := svc.Scroll(ctx, name, cursor, 10)
			require.NoError(t, err)
			for _, p := range page.Points {
				assert.False(t, seen[p.ID], "point %s returned twice", p.ID)
				seen[p.ID] = true
			}
			pages++
			if page.Cursor == "" {
				break
			}
			cursor = page.Cursor
			require.Less(t, pages, 10, "scroll did not terminate")
		}
		assert.Len(t, seen, 25)
	})

	t.Run("DeleteByIDsAndFilter", func(t *testing.T) {
		const name = "cleanup"
		require.NoError(t, svc.EnsureCollection(ctx, name, 4, vectorstore.DistanceCosine))

		require.NoError(t, svc.Upsert(ctx, name, []vectorstore.Point{
			{ID: "1", Vector: []float32{1, 0, 0, 0}, Payload: map[string]any{"stale": true}},
			{ID: "2", Vector: []float32{0, 1, 0, 0}, Payload: map[string]any{"stale": false}},
			{ID: "3", Vector: []float32{0, 0, 1, 0}, Payload: map[string]any{"stale": true}},
		}))

		require.NoError(t, svc.Delete(ctx, name, []string{"2"}))
		points, err := svc.Retrieve(ctx, name, []string{"1", "2", "3"})
		require.NoError(t, err)
		assert.Len(t, points, 2)

		require.NoError(t, svc.DeleteByFilter(ctx, name, &vectorstore.Filter{
			Must: []vectorstore.Condition{
				vectorstore.MatchCondition{Field: "stale", Value: true},
			},
		}))
		points, err = svc.Retrieve(ctx, name, []string{"1", "2", "3"})
		require.NoError(t, err)
		assert.Empty(t, points)

		// Wiping via an empty filter is refused.
		err = svc.DeleteByFilter(ctx, name, &vectorstore.Filter{})
		assert.True(t, vectorstore.IsInvalidArgument(err))
	})

	t.Run("UpdateVectorsKeepsPayload", func(t *testing.T) {
		const name = "revector"
		require.NoError(t, svc.EnsureCollection(ctx, name, 4, vectorstore.DistanceCosine))

		require.NoError(t, svc.Upsert(ctx, name, []vectorstore.Point{
			{ID: "7", Vector: []float32{1, 0, 0, 0}, Payload: map[string]any{"kind": "doc"}},
		}))

		require.NoError(t, svc.UpdateVectors(ctx, name, []vectorstore.VectorPatch{
			{ID: "7", Vector: []float32{0, 0, 0, 1}},
		}))

		points, err := svc.Retrieve(ctx, name, []string{"7"})
		require.NoError(t, err)
		require.Len(t, points, 1)
		assert.Equal(t, []float32{0, 0, 0, 1}, points[0].Vector)
		assert.Equal(t, "doc", points[0].Payload["kind"])
	})

	t.Run("SetPayloadMerges", func(t *testing.T) {
		const name = "repayload"
		require.NoError(t, svc.EnsureCollection(ctx, name, 4, vectorstore.DistanceCosine))

		require.NoError(t, svc.Upsert(ctx, name, []vectorstore.Point{
			{ID: "5", Vector: []float32{1, 0, 0, 0}, Payload: map[string]any{"a": "old", "b": "keep"}},
		}))

		require.NoError(t, svc.SetPayload(ctx, name, map[string]any{"a": "new", "c": "added"}, []string{"5"}))

		points, err := svc.Retrieve(ctx, name, []string{"5"})
		require.NoError(t, err)
		require.Len(t, points, 1)
		assert.Equal(t, "new", points[0].Payload["a"])
		assert.Equal(t, "keep", points[0].Payload["b"])
		assert.Equal(t, "added", points[0].Payload["c"])
	})

	t.Run("MissingCollectionErrors", func(t *testing.T) {
		_, err := svc.Search(ctx, vectorstore.SearchRequest{
			CollectionName: "no_such_collection",
			Vector:         []float32{1, 0, 0, 0},
			Limit:          5,
		})
		assert.True(t, vectorstore.IsNotFound(err), "got %v", err)

		_, err = svc.GetCollection(ctx, "no_such_collection")
		assert.True(t, vectorstore.IsNotFound(err), "got %v", err)
	})

	t.Run("DimensionMismatchIsValidation", func(t *testing.T) {
		const name = "strict_dim"
		require.NoError(t, svc.EnsureCollection(ctx, name, 4, vectorstore.DistanceCosine))

		err := svc.Upsert(ctx, name, []vectorstore.Point{
			{ID: "1", Vector: []float32{1, 0}},
		})
		assert.True(t, vectorstore.IsInvalidArgument(err), "got %v", err)
	})
}
