package qdrant

import (
	"context"
	"fmt"

	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/embedhub/vectorgate/vectorstore"
)

// Mutations wait for the service to apply them before returning, so a
// retrieve immediately after an upsert observes the write.
var waitTrue = true

// Upsert inserts or replaces points by identifier. The whole batch is one
// request; the service applies it atomically or rejects it.
func (c *Client) Upsert(ctx context.Context, collection string, points []vectorstore.Point) (err error) {
	if collection == "" {
		return &vectorstore.ValidationError{Reason: "collection name cannot be empty"}
	}
	if len(points) == 0 {
		return nil
	}

	ctx, finish := c.instrument(ctx, "upsert", collection)
	defer func() { finish(err) }()

	structs := make([]*qdrant.PointStruct, 0, len(points))
	for i, p := range points {
		if p.ID == "" {
			return &vectorstore.ValidationError{Reason: fmt.Sprintf("point [%d]: id cannot be empty", i)}
		}
		if len(p.Vector) == 0 {
			return &vectorstore.ValidationError{Reason: fmt.Sprintf("point %q: vector cannot be empty", p.ID)}
		}
		structs = append(structs, &qdrant.PointStruct{
			Id:      toPointID(p.ID),
			Vectors: qdrant.NewVectors(p.Vector...),
			Payload: qdrant.NewValueMap(p.Payload),
		})
	}

	_, err = c.api.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: collection,
		Points:         structs,
		Wait:           &waitTrue,
	})
	if err != nil {
		return translateError("upsert", collection, err)
	}

	c.log.Debug("upserted points", nil, map[string]interface{}{
		"collection": collection,
		"count":      len(points),
	})
	return nil
}

// Search performs a similarity search and returns results ranked by
// non-increasing score. Offset skips leading results for pagination;
// Filter restricts candidates by payload fields.
func (c *Client) Search(ctx context.Context, req vectorstore.SearchRequest) (results []vectorstore.SearchResult, err error) {
	if err := validateSearchRequest(req); err != nil {
		return nil, err
	}

	ctx, finish := c.instrument(ctx, "search", req.CollectionName)
	defer func() { finish(err) }()

	filter, err := toQdrantFilter(req.Filter)
	if err != nil {
		return nil, err
	}

	limit := uint64(req.Limit)
	query := &qdrant.QueryPoints{
		CollectionName: req.CollectionName,
		Query:          qdrant.NewQuery(req.Vector...),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
		Filter:         filter,
	}
	if req.Offset > 0 {
		offset := uint64(req.Offset)
		query.Offset = &offset
	}

	resp, err := c.api.Query(ctx, query)
	if err != nil {
		return nil, translateError("search", req.CollectionName, err)
	}

	results, err = fromScoredPoints(resp)
	if err != nil {
		return nil, err
	}

	c.log.Debug("search completed", nil, map[string]interface{}{
		"collection": req.CollectionName,
		"hits":       len(results),
	})
	return results, nil
}

// Retrieve returns the points matching the given identifiers, with their
// current vectors and payloads. Identifiers with no stored point are
// silently omitted; asking for missing ids is not an error.
func (c *Client) Retrieve(ctx context.Context, collection string, ids []string) (points []vectorstore.Point, err error) {
	if collection == "" {
		return nil, &vectorstore.ValidationError{Reason: "collection name cannot be empty"}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	ctx, finish := c.instrument(ctx, "retrieve", collection)
	defer func() { finish(err) }()

	resp, err := c.api.Get(ctx, &qdrant.GetPoints{
		CollectionName: collection,
		Ids:            toPointIDs(ids),
		WithPayload:    qdrant.NewWithPayload(true),
		WithVectors:    qdrant.NewWithVectors(true),
	})
	if err != nil {
		return nil, translateError("retrieve", collection, err)
	}

	points = make([]vectorstore.Point, 0, len(resp))
	for _, r := range resp {
		p, err := fromRetrievedPoint(r)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

// Scroll returns one bounded batch of points plus an opaque cursor.
// An empty cursor starts from the beginning; passing the returned cursor
// continues; end of data yields an empty batch and an empty cursor.
//
// The cursor is the string form of the service's next-page offset, so the
// abstraction stays free of SDK types.
func (c *Client) Scroll(ctx context.Context, collection string, cursor string, limit int) (page *vectorstore.ScrollPage, err error) {
	if collection == "" {
		return nil, &vectorstore.ValidationError{Reason: "collection name cannot be empty"}
	}
	if limit <= 0 {
		return nil, &vectorstore.ValidationError{Reason: "scroll limit must be positive"}
	}

	ctx, finish := c.instrument(ctx, "scroll", collection)
	defer func() { finish(err) }()

	lim := uint32(limit)
	req := &qdrant.ScrollPoints{
		CollectionName: collection,
		Limit:          &lim,
		WithPayload:    qdrant.NewWithPayload(true),
		WithVectors:    qdrant.NewWithVectors(true),
	}
	if cursor != "" {
		req.Offset = toPointID(cursor)
	}

	// The high-level SDK wrapper drops the next-page offset, so scroll
	// goes through the raw points service.
	resp, err := c.api.GetPointsClient().Scroll(ctx, req)
	if err != nil {
		return nil, translateError("scroll", collection, err)
	}

	page = &vectorstore.ScrollPage{Points: make([]vectorstore.Point, 0, len(resp.GetResult()))}
	for _, r := range resp.GetResult() {
		p, err := fromRetrievedPoint(r)
		if err != nil {
			return nil, err
		}
		page.Points = append(page.Points, p)
	}

	if next := resp.GetNextPageOffset(); next != nil {
		page.Cursor, err = fromPointID(next)
		if err != nil {
			return nil, err
		}
	}
	return page, nil
}

// Delete removes points by explicit identifier list.
func (c *Client) Delete(ctx context.Context, collection string, ids []string) (err error) {
	if collection == "" {
		return &vectorstore.ValidationError{Reason: "collection name cannot be empty"}
	}
	if len(ids) == 0 {
		return nil
	}

	ctx, finish := c.instrument(ctx, "delete", collection)
	defer func() { finish(err) }()

	_, err = c.api.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: collection,
		Points: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Points{
				Points: &qdrant.PointsIdsList{Ids: toPointIDs(ids)},
			},
		},
		Wait: &waitTrue,
	})
	if err != nil {
		return translateError("delete", collection, err)
	}

	c.log.Debug("deleted points", nil, map[string]interface{}{
		"collection": collection,
		"count":      len(ids),
	})
	return nil
}

// DeleteByFilter removes every point matching the filter predicate.
// The predicate is evaluated by the service.
func (c *Client) DeleteByFilter(ctx context.Context, collection string, filter *vectorstore.Filter) (err error) {
	if collection == "" {
		return &vectorstore.ValidationError{Reason: "collection name cannot be empty"}
	}
	if filter.IsEmpty() {
		// An empty predicate would wipe the collection; require that to
		// be spelled out via EnsureCollection or EnsureAbsent instead.
		return &vectorstore.ValidationError{Reason: "delete filter cannot be empty"}
	}

	ctx, finish := c.instrument(ctx, "delete_by_filter", collection)
	defer func() { finish(err) }()

	qf, err := toQdrantFilter(filter)
	if err != nil {
		return err
	}

	_, err = c.api.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: collection,
		Points: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Filter{Filter: qf},
		},
		Wait: &waitTrue,
	})
	if err != nil {
		return translateError("delete_by_filter", collection, err)
	}
	return nil
}

// UpdateVectors replaces the vectors of existing points. Payloads are
// left untouched.
func (c *Client) UpdateVectors(ctx context.Context, collection string, patches []vectorstore.VectorPatch) (err error) {
	if collection == "" {
		return &vectorstore.ValidationError{Reason: "collection name cannot be empty"}
	}
	if len(patches) == 0 {
		return nil
	}

	ctx, finish := c.instrument(ctx, "update_vectors", collection)
	defer func() { finish(err) }()

	points := make([]*qdrant.PointVectors, 0, len(patches))
	for _, p := range patches {
		if p.ID == "" {
			return &vectorstore.ValidationError{Reason: "vector patch id cannot be empty"}
		}
		if len(p.Vector) == 0 {
			return &vectorstore.ValidationError{Reason: fmt.Sprintf("vector patch %q: vector cannot be empty", p.ID)}
		}
		points = append(points, &qdrant.PointVectors{
			Id:      toPointID(p.ID),
			Vectors: qdrant.NewVectors(p.Vector...),
		})
	}

	_, err = c.api.UpdateVectors(ctx, &qdrant.UpdatePointVectors{
		CollectionName: collection,
		Points:         points,
		Wait:           &waitTrue,
	})
	if err != nil {
		return translateError("update_vectors", collection, err)
	}
	return nil
}

// SetPayload merges the patch into the payload of the given points. Only
// the keys present in the patch are written; existing keys that the patch
// does not name survive unchanged.
func (c *Client) SetPayload(ctx context.Context, collection string, patch map[string]any, ids []string) (err error) {
	if collection == "" {
		return &vectorstore.ValidationError{Reason: "collection name cannot be empty"}
	}
	if len(patch) == 0 {
		return &vectorstore.ValidationError{Reason: "payload patch cannot be empty"}
	}
	if len(ids) == 0 {
		return nil
	}

	ctx, finish := c.instrument(ctx, "set_payload", collection)
	defer func() { finish(err) }()

	_, err = c.api.SetPayload(ctx, &qdrant.SetPayloadPoints{
		CollectionName: collection,
		Payload:        qdrant.NewValueMap(patch),
		PointsSelector: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Points{
				Points: &qdrant.PointsIdsList{Ids: toPointIDs(ids)},
			},
		},
		Wait: &waitTrue,
	})
	if err != nil {
		return translateError("set_payload", collection, err)
	}
	return nil
}

// validateSearchRequest checks the locally verifiable parts of a search.
func validateSearchRequest(req vectorstore.SearchRequest) error {
	if req.CollectionName == "" {
		return &vectorstore.ValidationError{Reason: "collection name cannot be empty"}
	}
	if len(req.Vector) == 0 {
		return &vectorstore.ValidationError{Reason: "query vector cannot be empty"}
	}
	if req.Limit <= 0 {
		return &vectorstore.ValidationError{Reason: "search limit must be positive"}
	}
	if req.Offset < 0 {
		return &vectorstore.ValidationError{Reason: "search offset cannot be negative"}
	}
	return nil
}
