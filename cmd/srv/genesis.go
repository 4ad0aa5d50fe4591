package main

import (
	"encoding/json"

	"github.com/questx-lab/marketplace/internal/host"
	"github.com/questx-lab/marketplace/internal/model"
	"github.com/questx-lab/marketplace/pkg/xcontext"
)

// applyGenesis deploys the configured contracts and funds the genesis
// accounts. Every step is skipped when already done, and the funding commits
// together with the genesis marker, so a start that failed halfway can be
// retried.
func (s *srv) applyGenesis() error {
	cfg := xcontext.Configs(s.ctx)

	applied, err := s.runtime.IsGenesisApplied(s.ctx)
	if err != nil {
		return err
	}

	if applied {
		xcontext.Logger(s.ctx).Infof("Genesis is already applied, skip it")
		return nil
	}

	for _, c := range cfg.Genesis.Collections {
		deployed, err := s.runtime.IsDeployed(s.ctx, c.Address)
		if err != nil {
			return err
		}

		if deployed {
			continue
		}

		_, err = s.runtime.Deploy(s.ctx, c.Deployer, c.Address, 0, &model.NFTConstructorRequest{
			Name:        c.Name,
			Symbol:      c.Symbol,
			TotalSupply: c.TotalSupply,
			BaseURI:     c.BaseURI,
			TokenURI:    c.TokenURI,
			MintPrice:   c.MintPrice,
			StartTime:   c.StartTime,
		})
		if err != nil {
			return err
		}

		xcontext.Logger(s.ctx).Infof("Deployed collection %s at %s", c.Name, c.Address)
	}

	deployed, err := s.runtime.IsDeployed(s.ctx, cfg.Marketplace.Address)
	if err != nil {
		return err
	}

	if !deployed {
		_, err = s.runtime.Deploy(s.ctx, cfg.Marketplace.Owner, cfg.Marketplace.Address, 0,
			&model.MarketplaceConstructorRequest{
				Owner: cfg.Marketplace.Owner,
				Fee:   cfg.Marketplace.Fee,
			})
		if err != nil {
			return err
		}

		xcontext.Logger(s.ctx).Infof("Deployed marketplace at %s", cfg.Marketplace.Address)
	}

	// adminAddCollection is an upsert, running it again is harmless.

	for _, c := range cfg.Genesis.Collections {
		if !c.Listed {
			continue
		}

		params, err := json.Marshal(&model.AdminAddCollectionRequest{
			Name:      c.Name,
			Address:   c.Address,
			BaseURI:   c.BaseURI,
			MintPrice: c.MintPrice,
		})
		if err != nil {
			return err
		}

		_, err = s.runtime.Execute(s.ctx, &model.Operation{
			Caller:   cfg.Marketplace.Owner,
			Target:   cfg.Marketplace.Address,
			Function: "adminAddCollection",
			Params:   params,
		})
		if err != nil {
			return err
		}
	}

	allocations := make([]host.Allocation, 0, len(cfg.Genesis.Accounts))
	for _, account := range cfg.Genesis.Accounts {
		allocations = append(allocations, host.Allocation{Address: account.Address, Amount: account.Balance})
	}

	return s.runtime.CompleteGenesis(s.ctx, allocations)
}
