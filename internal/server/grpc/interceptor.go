package grpc

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/dmitrijs2005/studydesk/internal/common"
	"github.com/dmitrijs2005/studydesk/internal/logging"
	"github.com/dmitrijs2005/studydesk/internal/storeapi"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// methods that need a signed-in user on top of the api key
var protectedMethods = map[string]bool{
	storeapi.FullMethod(storeapi.MethodInsertPaper): true,
	storeapi.FullMethod(storeapi.MethodUpdatePaper): true,
	storeapi.FullMethod(storeapi.MethodDeletePaper): true,
	storeapi.FullMethod(storeapi.MethodInsertWord):  true,
	storeapi.FullMethod(storeapi.MethodUpdateWord):  true,
	storeapi.FullMethod(storeapi.MethodDeleteWord):  true,
	storeapi.FullMethod(storeapi.MethodExport):      true,
}

// UserIDFromContext returns the user authenticated by the access token
// interceptor, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

func firstMetadata(ctx context.Context, key string) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(key); len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

func (s *GRPCServer) apiKeyInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	key := firstMetadata(ctx, common.APIKeyHeaderName)
	if key == "" {
		return nil, status.Error(codes.Unauthenticated, "missing api key")
	}
	if subtle.ConstantTimeCompare([]byte(key), s.apiKey) != 1 {
		return nil, status.Error(codes.Unauthenticated, "invalid api key")
	}
	return handler(ctx, req)
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if !protectedMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	accessToken := firstMetadata(ctx, common.AccessTokenHeaderName)
	if accessToken == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	userID, err := s.users.UserID(accessToken)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
	}

	ctx = logging.ContextWith(context.WithValue(ctx, userIDKey, userID), "user_id", userID)
	return handler(ctx, req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	ctx = logging.ContextWith(ctx, "method", info.FullMethod)
	start := time.Now()
	resp, err := handler(ctx, req)

	code := status.Code(err)
	kv := []any{"code", code.String(), "duration", time.Since(start)}
	switch code {
	case codes.OK:
		s.logger.Debug(ctx, "rpc", kv...)
	case codes.Internal, codes.Unknown:
		s.logger.Error(ctx, "rpc", append(kv, "error", err.Error())...)
	default:
		s.logger.Info(ctx, "rpc", append(kv, "error", err.Error())...)
	}
	return resp, err
}
