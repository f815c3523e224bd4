package probe

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/embedhub/vectorgate/vectorstore"
	"github.com/embedhub/vectorgate/vectorstore/mocks"
)

func staticFactory(svc vectorstore.Service) Factory {
	return func(string) (vectorstore.Service, error) { return svc, nil }
}

func TestNewProber_RequiresFactory(t *testing.T) {
	_, err := NewProber(nil, nil)
	require.Error(t, err)
}

func TestRun_NoCredentials(t *testing.T) {
	p, err := NewProber(staticFactory(nil), nil)
	require.NoError(t, err)

	_, err = p.Run(context.Background(), nil)
	assert.True(t, vectorstore.IsInvalidArgument(err))
}

func TestRun_FullAccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)

	svc.EXPECT().ListCollections(gomock.Any()).Return([]string{"docs"}, nil)
	svc.EXPECT().EnsureCollection(gomock.Any(), gomock.Any(), uint64(4), vectorstore.DistanceCosine).Return(nil)
	svc.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	svc.EXPECT().Search(gomock.Any(), gomock.Any()).Return([]vectorstore.SearchResult{{ID: "1"}}, nil)
	svc.EXPECT().Delete(gomock.Any(), gomock.Any(), []string{"1"}).Return(nil)
	svc.EXPECT().EnsureAbsent(gomock.Any(), gomock.Any()).Return(nil)

	p, err := NewProber(staticFactory(svc), nil)
	require.NoError(t, err)

	reports, err := p.Run(context.Background(), []Credential{{Label: "admin", APIKey: "k"}})
	require.NoError(t, err)
	require.Len(t, reports, 1)

	report := reports[0]
	assert.Equal(t, "admin", report.Label)
	require.Len(t, report.Outcomes, 5)
	for _, o := range report.Outcomes {
		assert.True(t, o.OK, "operation %s", o.Operation)
		assert.Empty(t, o.ErrorKind)
	}
	assert.Equal(t,
		[]string{OpListCollections, OpCreateCollection, OpUpsertPoint, OpSearch, OpDeletePoint},
		report.Allowed())
}

func TestRun_ReadOnlyKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)

	denied := &vectorstore.AuthorizationError{Operation: "write", Err: errors.New("forbidden")}

	svc.EXPECT().ListCollections(gomock.Any()).Return([]string{"docs"}, nil)
	svc.EXPECT().EnsureCollection(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(denied)
	svc.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(denied)
	svc.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, nil)
	svc.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).Return(denied)
	svc.EXPECT().EnsureAbsent(gomock.Any(), gomock.Any()).Return(denied)

	p, err := NewProber(staticFactory(svc), nil)
	require.NoError(t, err)

	reports, err := p.Run(context.Background(), []Credential{{Label: "read-only", APIKey: "r"}})
	require.NoError(t, err)

	report := reports[0]
	require.Len(t, report.Outcomes, 5)
	assert.Equal(t, []string{OpListCollections, OpSearch}, report.Allowed())

	byOp := make(map[string]Outcome)
	for _, o := range report.Outcomes {
		byOp[o.Operation] = o
	}
	assert.Equal(t, KindUnauthorized, byOp[OpCreateCollection].ErrorKind)
	assert.Equal(t, KindUnauthorized, byOp[OpUpsertPoint].ErrorKind)
	assert.Equal(t, KindUnauthorized, byOp[OpDeletePoint].ErrorKind)
	assert.NotEmpty(t, byOp[OpUpsertPoint].Message)
}

// A denied write must not stop the battery; later operations still run.
func TestRun_ContinuesAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)

	svc.EXPECT().ListCollections(gomock.Any()).Return(nil, &vectorstore.AuthorizationError{Err: errors.New("no")})
	svc.EXPECT().EnsureCollection(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	svc.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	svc.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, nil)
	svc.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	svc.EXPECT().EnsureAbsent(gomock.Any(), gomock.Any()).Return(nil)

	p, err := NewProber(staticFactory(svc), nil)
	require.NoError(t, err)

	reports, err := p.Run(context.Background(), []Credential{{Label: "odd", APIKey: "k"}})
	require.NoError(t, err)
	require.Len(t, reports[0].Outcomes, 5)
}

func TestRun_ErrorKinds(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)

	svc.EXPECT().ListCollections(gomock.Any()).Return(nil, errors.New("connection refused"))
	svc.EXPECT().EnsureCollection(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&vectorstore.ValidationError{Reason: "bad name"})
	svc.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&vectorstore.NotFoundError{Collection: "x"})
	svc.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, nil)
	svc.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	svc.EXPECT().EnsureAbsent(gomock.Any(), gomock.Any()).Return(nil)

	p, err := NewProber(staticFactory(svc), nil)
	require.NoError(t, err)

	reports, err := p.Run(context.Background(), []Credential{{Label: "mixed", APIKey: "k"}})
	require.NoError(t, err)

	byOp := make(map[string]Outcome)
	for _, o := range reports[0].Outcomes {
		byOp[o.Operation] = o
	}
	assert.Equal(t, KindOther, byOp[OpListCollections].ErrorKind)
	assert.Equal(t, KindInvalidArgument, byOp[OpCreateCollection].ErrorKind)
	assert.Equal(t, KindNotFound, byOp[OpUpsertPoint].ErrorKind)
}

func TestRun_FactoryFailure(t *testing.T) {
	factory := func(string) (vectorstore.Service, error) {
		return nil, errors.New("dial failed")
	}

	p, err := NewProber(factory, nil)
	require.NoError(t, err)

	reports, err := p.Run(context.Background(), []Credential{{Label: "broken", APIKey: "k"}})
	require.NoError(t, err)

	require.Len(t, reports[0].Outcomes, 5)
	for _, o := range reports[0].Outcomes {
		assert.False(t, o.OK)
		assert.Equal(t, KindOther, o.ErrorKind)
	}
	assert.Empty(t, reports[0].Allowed())
}

func TestRun_MultipleCredentialsInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)

	// Two full batteries, one per credential.
	svc.EXPECT().ListCollections(gomock.Any()).Return(nil, nil).Times(2)
	svc.EXPECT().EnsureCollection(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	svc.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	svc.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	svc.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	svc.EXPECT().EnsureAbsent(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	p, err := NewProber(staticFactory(svc), nil)
	require.NoError(t, err)

	reports, err := p.Run(context.Background(), []Credential{
		{Label: "first", APIKey: "a"},
		{Label: "second", APIKey: "b"},
	})
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "first", reports[0].Label)
	assert.Equal(t, "second", reports[1].Label)
}
