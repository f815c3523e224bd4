// Package qdrant implements vectorstore.Service on top of the official
// Qdrant Go client.
//
// It is a thin wrapper: every operation is a single request/response
// against the remote service, with no retries, no local caching, and no
// state beyond the open connection handle. The package's responsibilities
// are:
//
//   - Building a configured client handle from host, port, TLS flag and
//     credential (the connection factory). Authentication is lazy: no
//     request is made at construction time, so a bad credential only
//     surfaces on the first call. Ping exposes an explicit health check
//     for callers that want fail-fast startup.
//   - Collection management, including the destructive EnsureCollection
//     recreate and the idempotent EnsureAbsent delete.
//   - The point gateway: upsert, search, retrieve, scroll, delete,
//     vector and payload updates.
//   - Converting between the SDK's protobuf types and the plain types in
//     the vectorstore package, so nothing outside this package touches
//     the Qdrant SDK.
//   - Translating transport errors into the vectorstore error kinds
//     (authorization, not-found, validation).
//
// Construction:
//
//	client, err := qdrant.NewClient(qdrant.Params{
//	    Config: qdrant.FromSettings(settings),
//	    Logger: log,
//	})
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	err = client.EnsureCollection(ctx, "articles", 384, vectorstore.DistanceCosine)
//
// The FXModule provides the client to an Fx application; its start hook
// calls Ping so a misconfigured endpoint fails the application boot.
package qdrant
