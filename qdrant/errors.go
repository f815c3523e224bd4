package qdrant

import (
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/embedhub/vectorgate/vectorstore"
)

// translateError converts transport failures into the vectorstore error
// kinds so callers never have to inspect gRPC status codes. Errors that
// match no known kind are returned wrapped but otherwise untouched.
func translateError(operation, collection string, err error) error {
	if err == nil {
		return nil
	}

	if s, ok := status.FromError(err); ok {
		switch s.Code() {
		case codes.PermissionDenied, codes.Unauthenticated:
			return &vectorstore.AuthorizationError{
				Operation:  operation,
				Collection: collection,
				Err:        err,
			}
		case codes.NotFound:
			return &vectorstore.NotFoundError{
				Collection: collection,
				Err:        err,
			}
		case codes.InvalidArgument:
			// Qdrant reports a missing collection as InvalidArgument
			// with a "doesn't exist" message on some endpoints.
			if strings.Contains(s.Message(), "doesn't exist") || strings.Contains(s.Message(), "not found") {
				return &vectorstore.NotFoundError{
					Collection: collection,
					Err:        err,
				}
			}
			return &vectorstore.ValidationError{
				Reason: s.Message(),
				Err:    err,
			}
		}
	}

	return fmt.Errorf("qdrant: %s failed: %w", operation, err)
}
