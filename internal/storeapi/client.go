package storeapi

import (
	"context"

	"google.golang.org/grpc"
)

// StoreClient is the client side of the store service.
type StoreClient interface {
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*TokenPair, error)
	RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*TokenPair, error)

	ListPapers(ctx context.Context, in *ListPapersRequest, opts ...grpc.CallOption) (*ListPapersResponse, error)
	InsertPaper(ctx context.Context, in *InsertPaperRequest, opts ...grpc.CallOption) (*InsertPaperResponse, error)
	UpdatePaper(ctx context.Context, in *UpdatePaperRequest, opts ...grpc.CallOption) (*Empty, error)
	DeletePaper(ctx context.Context, in *DeleteRequest, opts ...grpc.CallOption) (*Empty, error)

	ListWords(ctx context.Context, in *ListWordsRequest, opts ...grpc.CallOption) (*ListWordsResponse, error)
	InsertWord(ctx context.Context, in *InsertWordRequest, opts ...grpc.CallOption) (*InsertWordResponse, error)
	UpdateWord(ctx context.Context, in *UpdateWordRequest, opts ...grpc.CallOption) (*Empty, error)
	DeleteWord(ctx context.Context, in *DeleteRequest, opts ...grpc.CallOption) (*Empty, error)

	Export(ctx context.Context, in *ExportRequest, opts ...grpc.CallOption) (*ExportResponse, error)
}

type storeClient struct {
	cc grpc.ClientConnInterface
}

func NewStoreClient(cc grpc.ClientConnInterface) StoreClient {
	return &storeClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storeClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, MethodPing, in, opts)
}

func (c *storeClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	return invoke[RegisterResponse](ctx, c.cc, MethodRegister, in, opts)
}

func (c *storeClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*TokenPair, error) {
	return invoke[TokenPair](ctx, c.cc, MethodLogin, in, opts)
}

func (c *storeClient) RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*TokenPair, error) {
	return invoke[TokenPair](ctx, c.cc, MethodRefreshToken, in, opts)
}

func (c *storeClient) ListPapers(ctx context.Context, in *ListPapersRequest, opts ...grpc.CallOption) (*ListPapersResponse, error) {
	return invoke[ListPapersResponse](ctx, c.cc, MethodListPapers, in, opts)
}

func (c *storeClient) InsertPaper(ctx context.Context, in *InsertPaperRequest, opts ...grpc.CallOption) (*InsertPaperResponse, error) {
	return invoke[InsertPaperResponse](ctx, c.cc, MethodInsertPaper, in, opts)
}

func (c *storeClient) UpdatePaper(ctx context.Context, in *UpdatePaperRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, MethodUpdatePaper, in, opts)
}

func (c *storeClient) DeletePaper(ctx context.Context, in *DeleteRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, MethodDeletePaper, in, opts)
}

func (c *storeClient) ListWords(ctx context.Context, in *ListWordsRequest, opts ...grpc.CallOption) (*ListWordsResponse, error) {
	return invoke[ListWordsResponse](ctx, c.cc, MethodListWords, in, opts)
}

func (c *storeClient) InsertWord(ctx context.Context, in *InsertWordRequest, opts ...grpc.CallOption) (*InsertWordResponse, error) {
	return invoke[InsertWordResponse](ctx, c.cc, MethodInsertWord, in, opts)
}

func (c *storeClient) UpdateWord(ctx context.Context, in *UpdateWordRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, MethodUpdateWord, in, opts)
}

func (c *storeClient) DeleteWord(ctx context.Context, in *DeleteRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, MethodDeleteWord, in, opts)
}

func (c *storeClient) Export(ctx context.Context, in *ExportRequest, opts ...grpc.CallOption) (*ExportResponse, error) {
	return invoke[ExportResponse](ctx, c.cc, MethodExport, in, opts)
}
