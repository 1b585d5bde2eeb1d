package main

import (
	"fmt"
	"net/http"
	"pkidiscovery/internal/config"
	"pkidiscovery/internal/discovery"
	"pkidiscovery/internal/scanner"
	"pkidiscovery/internal/tlsscan"
	"pkidiscovery/pkg/gateway/relay"
	"pkidiscovery/pkg/kms/local"
	"pkidiscovery/pkg/metrics"
	"pkidiscovery/pkg/storage"
)

// newResolver builds the target resolver backed by the configured DNS providers.
func newResolver(cfg *config.Config) *discovery.Resolver {
	return discovery.NewResolver(discovery.NewDNSQuerier(), discovery.NewOptions(cfg))
}

// newScanner wires the discovery scanner. recorder may be nil.
func newScanner(cfg *config.Config, strg storage.Storage, recorder *metrics.Recorder) (scanner.Scanner, error) {
	kmsOptions, err := local.NewOptions(cfg.KMS.RootKey)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	encryptor, err := local.New(kmsOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create kms: %w", err)
	}

	deps := scanner.Deps{
		Storage:   strg,
		Resolver:  newResolver(cfg),
		Endpoints: tlsscan.New(tlsscan.NewOptions(cfg)),
		Encryptor: encryptor,
		Metrics:   recorder,
	}
	if cfg.Gateway.URL != "" {
		gateways, err := relay.New(&http.Client{Timeout: cfg.Gateway.RequestTimeout}, cfg.Gateway.URL, cfg.Gateway.Token)
		if err != nil {
			return nil, fmt.Errorf("could not create gateway relay client: %w", err)
		}
		deps.Gateways = gateways
	}

	return scanner.New(deps, scanner.NewOptions(cfg)), nil
}
