// Package storeapi describes the gRPC contract between the studydesk web
// client and the remote store: method names, messages, the service
// descriptor used to register a server, and a typed client stub.
//
// Messages are plain Go structs carried with a JSON codec registered under
// the "json" content-subtype, so both sides must import this package.
package storeapi

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "studydesk.store.v1.Store"

const (
	MethodPing         = "Ping"
	MethodRegister     = "Register"
	MethodLogin        = "Login"
	MethodRefreshToken = "RefreshToken"
	MethodListPapers   = "ListPapers"
	MethodInsertPaper  = "InsertPaper"
	MethodUpdatePaper  = "UpdatePaper"
	MethodDeletePaper  = "DeletePaper"
	MethodListWords    = "ListWords"
	MethodInsertWord   = "InsertWord"
	MethodUpdateWord   = "UpdateWord"
	MethodDeleteWord   = "DeleteWord"
	MethodExport       = "Export"
)

// FullMethod returns the "/service/method" path gRPC uses on the wire.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// StoreServer is implemented by the remote store.
type StoreServer interface {
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Login(context.Context, *LoginRequest) (*TokenPair, error)
	RefreshToken(context.Context, *RefreshTokenRequest) (*TokenPair, error)

	ListPapers(context.Context, *ListPapersRequest) (*ListPapersResponse, error)
	InsertPaper(context.Context, *InsertPaperRequest) (*InsertPaperResponse, error)
	UpdatePaper(context.Context, *UpdatePaperRequest) (*Empty, error)
	DeletePaper(context.Context, *DeleteRequest) (*Empty, error)

	ListWords(context.Context, *ListWordsRequest) (*ListWordsResponse, error)
	InsertWord(context.Context, *InsertWordRequest) (*InsertWordResponse, error)
	UpdateWord(context.Context, *UpdateWordRequest) (*Empty, error)
	DeleteWord(context.Context, *DeleteRequest) (*Empty, error)

	Export(context.Context, *ExportRequest) (*ExportResponse, error)
}

func unary[Req, Resp any](method string, call func(StoreServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(StoreServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(method)}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(StoreServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ServiceDesc is the grpc.ServiceDesc for the store service.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*StoreServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MethodPing, StoreServer.Ping),
		unary(MethodRegister, StoreServer.Register),
		unary(MethodLogin, StoreServer.Login),
		unary(MethodRefreshToken, StoreServer.RefreshToken),
		unary(MethodListPapers, StoreServer.ListPapers),
		unary(MethodInsertPaper, StoreServer.InsertPaper),
		unary(MethodUpdatePaper, StoreServer.UpdatePaper),
		unary(MethodDeletePaper, StoreServer.DeletePaper),
		unary(MethodListWords, StoreServer.ListWords),
		unary(MethodInsertWord, StoreServer.InsertWord),
		unary(MethodUpdateWord, StoreServer.UpdateWord),
		unary(MethodDeleteWord, StoreServer.DeleteWord),
		unary(MethodExport, StoreServer.Export),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "studydesk/store.v1",
}

// RegisterStoreServer attaches srv to the gRPC registrar.
func RegisterStoreServer(s grpc.ServiceRegistrar, srv StoreServer) {
	s.RegisterService(&ServiceDesc, srv)
}
