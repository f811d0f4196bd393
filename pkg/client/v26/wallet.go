package v26

import (
	"context"

	"github.com/rust-bitcoin/corepc/pkg/client"
	"github.com/rust-bitcoin/corepc/pkg/client/model"
)

// CreateWallet is the result of createwallet. The single warning string became a list.
type CreateWallet struct {
	Name     string   `json:"name"`
	Warnings []string `json:"warnings,omitempty"`
}

// LoadWallet is the result of loadwallet.
type LoadWallet struct {
	Name     string   `json:"name"`
	Warnings []string `json:"warnings,omitempty"`
}

// CreateWallet creates and loads a wallet with default options.
func (c *Client) CreateWallet(ctx context.Context, name string) (CreateWallet, error) {
	return client.Do[CreateWallet](ctx, c.Base, "createwallet", name)
}

// LoadWallet loads a wallet from the wallet directory.
func (c *Client) LoadWallet(ctx context.Context, name string) (LoadWallet, error) {
	if err := client.CheckVar("filename", name, "required"); err != nil {
		return LoadWallet{}, err
	}
	return client.Do[LoadWallet](ctx, c.Base, "loadwallet", name)
}

func (r CreateWallet) IntoModel() (model.CreateWallet, error) {
	return model.CreateWallet{Name: r.Name, Warnings: r.Warnings}, nil
}
