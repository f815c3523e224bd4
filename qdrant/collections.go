package qdrant

import (
	"context"
	"slices"

	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/embedhub/vectorgate/vectorstore"
)

// EnsureCollection recreates name from scratch: if the collection already
// exists it is deleted first, then created with the given dimension and
// metric.
//
// Destructive by contract: any previously stored points are lost. Use
// CreateCollectionIfMissing when existing data must survive. Failures,
// including permission denials from the service, propagate untouched.
func (c *Client) EnsureCollection(ctx context.Context, name string, dim uint64, metric vectorstore.Distance) (err error) {
	if name == "" {
		return &vectorstore.ValidationError{Reason: "collection name cannot be empty"}
	}
	if dim == 0 {
		return &vectorstore.ValidationError{Reason: "collection dimension must be positive"}
	}

	ctx, finish := c.instrument(ctx, "ensure_collection", name)
	defer func() { finish(err) }()

	names, err := c.api.ListCollections(ctx)
	if err != nil {
		return translateError("list_collections", "", err)
	}

	if slices.Contains(names, name) {
		c.log.Info("collection exists, recreating", nil, map[string]interface{}{
			"collection": name,
		})
		if err = c.api.DeleteCollection(ctx, name); err != nil {
			return translateError("delete_collection", name, err)
		}
	}

	if err = c.createCollection(ctx, name, dim, metric); err != nil {
		return err
	}

	c.log.Info("collection created", nil, map[string]interface{}{
		"collection": name,
		"dimension":  dim,
		"distance":   string(metric),
	})
	return nil
}

// CreateCollectionIfMissing creates name only when it does not already
// exist. Safe to call repeatedly; never drops data.
func (c *Client) CreateCollectionIfMissing(ctx context.Context, name string, dim uint64, metric vectorstore.Distance) (err error) {
	if name == "" {
		return &vectorstore.ValidationError{Reason: "collection name cannot be empty"}
	}
	if dim == 0 {
		return &vectorstore.ValidationError{Reason: "collection dimension must be positive"}
	}

	ctx, finish := c.instrument(ctx, "create_collection_if_missing", name)
	defer func() { finish(err) }()

	exists, err := c.api.CollectionExists(ctx, name)
	if err != nil {
		return translateError("collection_exists", name, err)
	}
	if exists {
		return nil
	}

	return c.createCollection(ctx, name, dim, metric)
}

// EnsureAbsent deletes name, treating "not found" as success. This is the
// explicit idempotent form of delete-if-exists: no error suppression, a
// missing collection simply means the desired state already holds.
func (c *Client) EnsureAbsent(ctx context.Context, name string) (err error) {
	if name == "" {
		return &vectorstore.ValidationError{Reason: "collection name cannot be empty"}
	}

	ctx, finish := c.instrument(ctx, "ensure_absent", name)
	defer func() { finish(err) }()

	exists, err := c.api.CollectionExists(ctx, name)
	if err != nil {
		return translateError("collection_exists", name, err)
	}
	if !exists {
		return nil
	}

	if err = c.api.DeleteCollection(ctx, name); err != nil {
		err = translateError("delete_collection", name, err)
		// The collection may have vanished between the existence check
		// and the delete; that still satisfies the contract.
		if vectorstore.IsNotFound(err) {
			return nil
		}
		return err
	}

	c.log.Info("collection deleted", nil, map[string]interface{}{
		"collection": name,
	})
	return nil
}

// CollectionExists reports whether name exists.
func (c *Client) CollectionExists(ctx context.Context, name string) (exists bool, err error) {
	if name == "" {
		return false, &vectorstore.ValidationError{Reason: "collection name cannot be empty"}
	}

	ctx, finish := c.instrument(ctx, "collection_exists", name)
	defer func() { finish(err) }()

	exists, err = c.api.CollectionExists(ctx, name)
	if err != nil {
		return false, translateError("collection_exists", name, err)
	}
	return exists, nil
}

// GetCollection retrieves metadata about a collection, decoupled from the
// SDK's deeply nested CollectionInfo protobuf.
func (c *Client) GetCollection(ctx context.Context, name string) (col *vectorstore.Collection, err error) {
	if name == "" {
		return nil, &vectorstore.ValidationError{Reason: "collection name cannot be empty"}
	}

	ctx, finish := c.instrument(ctx, "get_collection", name)
	defer func() { finish(err) }()

	info, err := c.api.GetCollectionInfo(ctx, name)
	if err != nil {
		return nil, translateError("get_collection", name, err)
	}

	dim, distance := extractVectorParams(info)

	return &vectorstore.Collection{
		Name:       name,
		Status:     info.GetStatus().String(),
		Dimension:  dim,
		Distance:   distance,
		PointCount: info.GetPointsCount(),
	}, nil
}

// ListCollections returns the names of all collections visible to the
// bound credential.
func (c *Client) ListCollections(ctx context.Context) (names []string, err error) {
	ctx, finish := c.instrument(ctx, "list_collections", "")
	defer func() { finish(err) }()

	names, err = c.api.ListCollections(ctx)
	if err != nil {
		return nil, translateError("list_collections", "", err)
	}

	c.log.Debug("listed collections", nil, map[string]interface{}{
		"count": len(names),
	})
	return names, nil
}

func (c *Client) createCollection(ctx context.Context, name string, dim uint64, metric vectorstore.Distance) error {
	distance, err := toQdrantDistance(metric)
	if err != nil {
		return err
	}

	req := &qdrant.CreateCollection{
		CollectionName: name,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     dim,
			Distance: distance,
		}),
	}
	if err := c.api.CreateCollection(ctx, req); err != nil {
		return translateError("create_collection", name, err)
	}
	return nil
}

// extractVectorParams digs the dimension and distance metric out of the
// CollectionInfo protobuf, guarding every nested pointer. Missing or
// unexpected config yields zero values.
func extractVectorParams(info *qdrant.CollectionInfo) (uint64, vectorstore.Distance) {
	if info == nil ||
		info.Config == nil ||
		info.Config.Params == nil ||
		info.Config.Params.VectorsConfig == nil ||
		info.Config.Params.VectorsConfig.Config == nil {
		return 0, ""
	}

	if cfg, ok := info.Config.Params.VectorsConfig.Config.(*qdrant.VectorsConfig_Params); ok {
		return cfg.Params.Size, fromQdrantDistance(cfg.Params.Distance)
	}
	return 0, ""
}
