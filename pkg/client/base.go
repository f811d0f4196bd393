package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/rust-bitcoin/corepc/pkg/rpc"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Base is the connection shared by every versioned client. It is safe for concurrent use.
type Base struct {
	version Version
	rpc     *rpc.Client
}

// NewBase validates cfg and prepares an HTTP transport. No connection is made until the first call.
func NewBase(version Version, cfg rpc.Config, opts ...rpc.Option) (*Base, error) {
	if !version.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVersion, int(version))
	}
	transport, err := rpc.NewHTTPTransport(cfg)
	if err != nil {
		return nil, err
	}
	return NewBaseWithTransport(version, transport, opts...), nil
}

// NewBaseWithTransport wraps an existing transport, typically an in-memory one in tests.
func NewBaseWithTransport(version Version, transport rpc.Transport, opts ...rpc.Option) *Base {
	return &Base{
		version: version,
		rpc:     rpc.NewClient(transport, opts...),
	}
}

// Version is the daemon version this client was built for.
func (b *Base) Version() Version {
	return b.version
}

// RPC exposes the untyped client for methods without a typed wrapper.
func (b *Base) RPC() *rpc.Client {
	return b.rpc
}

// Call invokes method with positional params and decodes into result, which may be nil.
func (b *Base) Call(ctx context.Context, method string, result any, params ...any) error {
	return b.rpc.Call(ctx, method, params, result)
}

// Do is Call for methods returning a value.
func Do[T any](ctx context.Context, b *Base, method string, params ...any) (T, error) {
	var res T
	if err := b.Call(ctx, method, &res, params...); err != nil {
		var zero T
		return zero, err
	}
	return res, nil
}

// CheckVar validates one argument against a validator tag before anything is sent.
func CheckVar(name string, value any, tag string) error {
	if err := validate.Var(value, tag); err != nil {
		return fmt.Errorf("%w: %s: %s", ErrInvalidArgument, name, describe(err))
	}
	return nil
}

// CheckStruct validates an options struct by its validate tags.
func CheckStruct(s any) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidArgument, describe(err))
	}
	return nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	name := fe.Field()
	if name == "" {
		name = "value"
	}
	if fe.Param() != "" {
		return fmt.Sprintf("%s must satisfy %s=%s, got %v", name, fe.Tag(), fe.Param(), fe.Value())
	}
	return fmt.Sprintf("%s must satisfy %s, got %v", name, fe.Tag(), fe.Value())
}

type serverVersion struct {
	Version int `json:"version"`
}

// ServerVersion reads getnetworkinfo.version without decoding the rest of the result.
func (b *Base) ServerVersion(ctx context.Context) (int, error) {
	var info serverVersion
	if err := b.Call(ctx, "getnetworkinfo", &info); err != nil {
		return 0, err
	}
	return info.Version, nil
}

// CheckExpectedServerVersion fails with ErrUnexpectedServerVersion when the daemon is not the
// version this client was built for.
func (b *Base) CheckExpectedServerVersion(ctx context.Context) error {
	got, err := b.ServerVersion(ctx)
	if err != nil {
		return err
	}
	if !b.version.Accepts(got) {
		return fmt.Errorf("%w: client %s expects one of %v, daemon reports %d",
			ErrUnexpectedServerVersion, b.version, b.version.ExpectedServerVersions(), got)
	}
	return nil
}
