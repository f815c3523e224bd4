package qdrant

import (
	"fmt"
	"strconv"
	"time"

	qdrant "github.com/qdrant/go-client/qdrant"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/embedhub/vectorgate/vectorstore"
)

// ── Distance / ID Conversion ─────────────────────────────────────────────────

// toQdrantDistance maps the vectorstore metric enum to the SDK's.
func toQdrantDistance(d vectorstore.Distance) (qdrant.Distance, error) {
	switch d {
	case vectorstore.DistanceCosine, "":
		return qdrant.Distance_Cosine, nil
	case vectorstore.DistanceDot:
		return qdrant.Distance_Dot, nil
	case vectorstore.DistanceEuclid:
		return qdrant.Distance_Euclid, nil
	default:
		return qdrant.Distance_UnknownDistance, &vectorstore.ValidationError{
			Reason: fmt.Sprintf("unknown distance metric %q", d),
		}
	}
}

// fromQdrantDistance maps the SDK enum back to the vectorstore one.
func fromQdrantDistance(d qdrant.Distance) vectorstore.Distance {
	switch d {
	case qdrant.Distance_Cosine:
		return vectorstore.DistanceCosine
	case qdrant.Distance_Dot:
		return vectorstore.DistanceDot
	case qdrant.Distance_Euclid:
		return vectorstore.DistanceEuclid
	default:
		return ""
	}
}

// toPointID maps a string identifier to Qdrant's PointId. Unsigned
// decimal strings become numeric ids, everything else is treated as a
// UUID, matching what the service accepts.
func toPointID(id string) *qdrant.PointId {
	if n, err := strconv.ParseUint(id, 10, 64); err == nil {
		return qdrant.NewIDNum(n)
	}
	return qdrant.NewID(id)
}

// fromPointID extracts the string form of a Qdrant PointId.
func fromPointID(id *qdrant.PointId) (string, error) {
	if id == nil {
		return "", fmt.Errorf("qdrant: nil point id")
	}
	switch v := id.PointIdOptions.(type) {
	case *qdrant.PointId_Num:
		return strconv.FormatUint(v.Num, 10), nil
	case *qdrant.PointId_Uuid:
		return v.Uuid, nil
	default:
		return "", fmt.Errorf("qdrant: unexpected PointId type: %T", v)
	}
}

// toPointIDs converts a batch of string ids.
func toPointIDs(ids []string) []*qdrant.PointId {
	out := make([]*qdrant.PointId, 0, len(ids))
	for _, id := range ids {
		out = append(out, toPointID(id))
	}
	return out
}

// ── Payload Conversion ───────────────────────────────────────────────────────

// fromQdrantPayload converts the protobuf payload to a generic map.
func fromQdrantPayload(payload map[string]*qdrant.Value) map[string]any {
	if len(payload) == 0 {
		return nil
	}
	result := make(map[string]any, len(payload))
	for k, v := range payload {
		result[k] = fromQdrantValue(v)
	}
	return result
}

// fromQdrantValue recursively converts a Qdrant Value to a Go native type.
func fromQdrantValue(v *qdrant.Value) any {
	if v == nil {
		return nil
	}
	switch val := v.Kind.(type) {
	case *qdrant.Value_StringValue:
		return val.StringValue
	case *qdrant.Value_IntegerValue:
		return val.IntegerValue
	case *qdrant.Value_DoubleValue:
		return val.DoubleValue
	case *qdrant.Value_BoolValue:
		return val.BoolValue
	case *qdrant.Value_NullValue:
		return nil
	case *qdrant.Value_StructValue:
		if val.StructValue == nil {
			return nil
		}
		return fromQdrantPayload(val.StructValue.Fields)
	case *qdrant.Value_ListValue:
		if val.ListValue == nil {
			return nil
		}
		items := make([]any, len(val.ListValue.Values))
		for i, item := range val.ListValue.Values {
			items[i] = fromQdrantValue(item)
		}
		return items
	default:
		return nil
	}
}

// fromRetrievedPoint converts an SDK retrieved point, including its
// stored vector when the request asked for vectors.
func fromRetrievedPoint(r *qdrant.RetrievedPoint) (vectorstore.Point, error) {
	id, err := fromPointID(r.GetId())
	if err != nil {
		return vectorstore.Point{}, err
	}
	return vectorstore.Point{
		ID:      id,
		Vector:  r.GetVectors().GetVector().GetData(),
		Payload: fromQdrantPayload(r.GetPayload()),
	}, nil
}

// fromScoredPoints converts the SDK search response, preserving the
// service's ranking order.
func fromScoredPoints(resp []*qdrant.ScoredPoint) ([]vectorstore.SearchResult, error) {
	results := make([]vectorstore.SearchResult, 0, len(resp))
	for _, r := range resp {
		id, err := fromPointID(r.GetId())
		if err != nil {
			return nil, err
		}
		results = append(results, vectorstore.SearchResult{
			ID:      id,
			Score:   r.GetScore(),
			Payload: fromQdrantPayload(r.GetPayload()),
		})
	}
	return results, nil
}

// ── Filter Conversion ────────────────────────────────────────────────────────

// toQdrantFilter converts a vectorstore filter tree to the SDK's wire
// filter. An empty filter converts to nil so requests omit it entirely.
//
// When MinShould is positive the Should conditions move into the wire
// format's min_should clause, which carries its own condition list.
func toQdrantFilter(f *vectorstore.Filter) (*qdrant.Filter, error) {
	if f.IsEmpty() {
		return nil, nil
	}

	filter := &qdrant.Filter{}

	var err error
	if filter.Must, err = toQdrantConditions(f.Must); err != nil {
		return nil, err
	}
	if filter.MustNot, err = toQdrantConditions(f.MustNot); err != nil {
		return nil, err
	}

	should, err := toQdrantConditions(f.Should)
	if err != nil {
		return nil, err
	}
	if f.MinShould > 0 && len(should) > 0 {
		filter.MinShould = &qdrant.MinShould{
			Conditions: should,
			MinCount:   uint64(f.MinShould),
		}
	} else {
		filter.Should = should
	}

	return filter, nil
}

func toQdrantConditions(conds []vectorstore.Condition) ([]*qdrant.Condition, error) {
	if len(conds) == 0 {
		return nil, nil
	}
	out := make([]*qdrant.Condition, 0, len(conds))
	for _, c := range conds {
		qc, err := toQdrantCondition(c)
		if err != nil {
			return nil, err
		}
		if qc != nil {
			out = append(out, qc)
		}
	}
	return out, nil
}

func toQdrantCondition(c vectorstore.Condition) (*qdrant.Condition, error) {
	switch cond := c.(type) {
	case vectorstore.MatchCondition:
		return toQdrantMatch(cond)
	case vectorstore.MatchAnyCondition:
		return toQdrantMatchAny(cond.Field, cond.Values, false)
	case vectorstore.MatchExceptCondition:
		return toQdrantMatchAny(cond.Field, cond.Values, true)
	case vectorstore.NumericRangeCondition:
		return toQdrantNumericRange(cond)
	case vectorstore.TimeRangeCondition:
		return toQdrantTimeRange(cond)
	case vectorstore.IsNullCondition:
		return qdrant.NewIsNull(cond.Field), nil
	case vectorstore.IsEmptyCondition:
		return qdrant.NewIsEmpty(cond.Field), nil
	default:
		return nil, &vectorstore.ValidationError{
			Reason: fmt.Sprintf("unsupported filter condition type %T", c),
		}
	}
}

func toQdrantMatch(c vectorstore.MatchCondition) (*qdrant.Condition, error) {
	switch v := c.Value.(type) {
	case string:
		return qdrant.NewMatch(c.Field, v), nil
	case bool:
		return qdrant.NewMatchBool(c.Field, v), nil
	case int:
		return qdrant.NewMatchInt(c.Field, int64(v)), nil
	case int64:
		return qdrant.NewMatchInt(c.Field, v), nil
	case float64:
		// JSON numbers decode as float64; integral values are accepted.
		if v == float64(int64(v)) {
			return qdrant.NewMatchInt(c.Field, int64(v)), nil
		}
		return nil, &vectorstore.ValidationError{
			Reason: fmt.Sprintf("match condition on %q: non-integral float %v not supported", c.Field, v),
		}
	default:
		return nil, &vectorstore.ValidationError{
			Reason: fmt.Sprintf("match condition on %q: unsupported value type %T", c.Field, c.Value),
		}
	}
}

func toQdrantMatchAny(field string, values []any, except bool) (*qdrant.Condition, error) {
	if len(values) == 0 {
		return nil, &vectorstore.ValidationError{
			Reason: fmt.Sprintf("match-any condition on %q: values cannot be empty", field),
		}
	}

	switch values[0].(type) {
	case string:
		strs := make([]string, len(values))
		for i, v := range values {
			s, ok := v.(string)
			if !ok {
				return nil, &vectorstore.ValidationError{
					Reason: fmt.Sprintf("match-any condition on %q: mixed value types", field),
				}
			}
			strs[i] = s
		}
		if except {
			return qdrant.NewMatchExceptKeywords(field, strs...), nil
		}
		return qdrant.NewMatchKeywords(field, strs...), nil
	case int, int64, float64:
		ints := make([]int64, len(values))
		for i, v := range values {
			switch n := v.(type) {
			case int:
				ints[i] = int64(n)
			case int64:
				ints[i] = n
			case float64:
				// JSON numbers decode as float64; only integral values
				// map onto the integer match.
				if n != float64(int64(n)) {
					return nil, &vectorstore.ValidationError{
						Reason: fmt.Sprintf("match-any condition on %q: non-integral float %v not supported", field, n),
					}
				}
				ints[i] = int64(n)
			default:
				return nil, &vectorstore.ValidationError{
					Reason: fmt.Sprintf("match-any condition on %q: mixed value types", field),
				}
			}
		}
		if except {
			return qdrant.NewMatchExceptInts(field, ints...), nil
		}
		return qdrant.NewMatchInts(field, ints...), nil
	default:
		return nil, &vectorstore.ValidationError{
			Reason: fmt.Sprintf("match-any condition on %q: unsupported value type %T", field, values[0]),
		}
	}
}

func toQdrantNumericRange(c vectorstore.NumericRangeCondition) (*qdrant.Condition, error) {
	r := c.Range
	if r.Gt == nil && r.Gte == nil && r.Lt == nil && r.Lte == nil {
		return nil, &vectorstore.ValidationError{
			Reason: fmt.Sprintf("range condition on %q: no bounds set", c.Field),
		}
	}
	return qdrant.NewRange(c.Field, &qdrant.Range{
		Gt:  r.Gt,
		Gte: r.Gte,
		Lt:  r.Lt,
		Lte: r.Lte,
	}), nil
}

func toQdrantTimeRange(c vectorstore.TimeRangeCondition) (*qdrant.Condition, error) {
	r := c.Range
	if r.Gt == nil && r.Gte == nil && r.Lt == nil && r.Lte == nil {
		return nil, &vectorstore.ValidationError{
			Reason: fmt.Sprintf("time range condition on %q: no bounds set", c.Field),
		}
	}
	return qdrant.NewDatetimeRange(c.Field, &qdrant.DatetimeRange{
		Gt:  toTimestamp(r.Gt),
		Gte: toTimestamp(r.Gte),
		Lt:  toTimestamp(r.Lt),
		Lte: toTimestamp(r.Lte),
	}), nil
}

// toTimestamp converts a *time.Time to protobuf form (nil-safe).
func toTimestamp(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}
