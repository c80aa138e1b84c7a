package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/studydesk/internal/common"
	"github.com/dmitrijs2005/studydesk/internal/logging"
	"github.com/dmitrijs2005/studydesk/internal/server/auth"
	"github.com/dmitrijs2005/studydesk/internal/server/config"
	"github.com/dmitrijs2005/studydesk/internal/server/services"
	"github.com/dmitrijs2005/studydesk/internal/storeapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func interceptorServer() *GRPCServer {
	cfg := &config.Config{SecretKey: "secret", AccessTokenTTL: time.Minute, RefreshTokenTTL: time.Hour}
	us := services.NewUserService(nil, nil, cfg)
	return NewGRPCServer("", "anon", logging.NewNop(), us, nil, nil, nil)
}

func withToken(t *testing.T, validity time.Duration) context.Context {
	t.Helper()
	tok, err := auth.GenerateToken("user-1", []byte("secret"), validity)
	require.NoError(t, err)
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs(common.AccessTokenHeaderName, tok))
}

func TestAccessTokenInterceptor(t *testing.T) {
	s := interceptorServer()
	insert := &grpc.UnaryServerInfo{FullMethod: storeapi.FullMethod(storeapi.MethodInsertPaper)}

	t.Run("reads pass without token", func(t *testing.T) {
		called := false
		_, err := s.accessTokenInterceptor(context.Background(), nil,
			&grpc.UnaryServerInfo{FullMethod: storeapi.FullMethod(storeapi.MethodListPapers)},
			func(ctx context.Context, req any) (any, error) { called = true; return nil, nil })
		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := s.accessTokenInterceptor(context.Background(), nil, insert,
			func(context.Context, any) (any, error) { t.Fatal("handler called"); return nil, nil })
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("expired token", func(t *testing.T) {
		_, err := s.accessTokenInterceptor(withToken(t, -time.Minute), nil, insert,
			func(context.Context, any) (any, error) { t.Fatal("handler called"); return nil, nil })
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
		assert.Equal(t, common.ErrTokenExpired.Error(), status.Convert(err).Message())
	})

	t.Run("valid token stores user id", func(t *testing.T) {
		var got string
		_, err := s.accessTokenInterceptor(withToken(t, time.Minute), nil, insert,
			func(ctx context.Context, req any) (any, error) {
				got, _ = UserIDFromContext(ctx)
				return nil, nil
			})
		require.NoError(t, err)
		assert.Equal(t, "user-1", got)
	})
}

func TestToStatus(t *testing.T) {
	cases := []struct {
		err  error
		want codes.Code
	}{
		{fmt.Errorf("db error: %w", common.ErrorNotFound), codes.NotFound},
		{fmt.Errorf("%w: title must not be empty", common.ErrorValidation), codes.InvalidArgument},
		{common.ErrorAlreadyExists, codes.AlreadyExists},
		{common.ErrorUnauthorized, codes.Unauthenticated},
		{common.ErrRefreshTokenExpired, codes.Unauthenticated},
		{common.ErrExportDisabled, codes.FailedPrecondition},
		{context.DeadlineExceeded, codes.DeadlineExceeded},
		{errors.New("disk on fire"), codes.Internal},
	}
	for _, tc := range cases {
		st := status.Convert(toStatus(tc.err))
		assert.Equal(t, tc.want, st.Code(), tc.err.Error())
		assert.Equal(t, tc.err.Error(), st.Message())
	}
}
