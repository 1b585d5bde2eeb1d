package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"pkidiscovery/internal/config"
	"pkidiscovery/internal/discovery"
	"pkidiscovery/pkg/domain"
	"pkidiscovery/pkg/logger"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// targetFlags binds a target configuration to command line flags.
type targetFlags struct {
	ipRanges   []string
	domains    []string
	ports      string
	hasGateway bool
}

func (f *targetFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.ipRanges, "ip-range", nil, "CIDR block or individual IP, repeatable")
	cmd.Flags().StringSliceVar(&f.domains, "domain", nil, "Fully qualified domain name, repeatable")
	cmd.Flags().StringVar(&f.ports, "ports", discovery.DefaultPorts, "Comma separated ports and ranges")
	cmd.Flags().BoolVar(&f.hasGateway, "gateway", false, "Treat the target as scanned through a gateway")
}

func (f *targetFlags) target() domain.TargetConfig {
	return domain.TargetConfig{
		IPRanges: f.ipRanges,
		Domains:  f.domains,
		Ports:    f.ports,
	}
}

func printJSON(ctx context.Context, v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		logger.Fatal(ctx, "could not write output", zap.Error(err))
	}
}

func discoveryIDFlag(cmd *cobra.Command, id *string) {
	cmd.Flags().StringVar(id, "discovery", "", "Discovery configuration ID")
	_ = cmd.MarkFlagRequired("discovery")
}

func parseDiscoveryID(ctx context.Context, id string) domain.DiscoveryID {
	parsed, err := uuid.Parse(id)
	if err != nil {
		logger.Fatal(ctx, "invalid discovery id", zap.String("discoveryID", id), zap.Error(err))
	}

	return domain.DiscoveryID(parsed)
}

// triggerCommand claims the project scan slot and enqueues a scan job for a
// running worker to pick up.
func triggerCommand(cfg *config.Config) *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "trigger",
		Short: "Enqueues a scan of a discovery",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			discoveryID := parseDiscoveryID(ctx, id)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			s, err := newScanner(cfg, strg, nil)
			if err != nil {
				logger.Fatal(ctx, "could not create discovery scanner", zap.Error(err))
			}

			discoveryConfig, err := s.Trigger(ctx, discoveryID)
			if err != nil {
				logger.Fatal(ctx, "could not trigger scan", zap.Error(err))
			}
			printJSON(ctx, discoveryConfig)
		},
	}
	discoveryIDFlag(cmd, &id)

	return cmd
}

// runCommand executes a scan in the foreground, bypassing the job queue.
func runCommand(cfg *config.Config) *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Runs a scan of a discovery in the foreground",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			discoveryID := parseDiscoveryID(ctx, id)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			s, err := newScanner(cfg, strg, nil)
			if err != nil {
				logger.Fatal(ctx, "could not create discovery scanner", zap.Error(err))
			}

			if err := s.Execute(ctx, discoveryID); err != nil {
				logger.Fatal(ctx, "scan failed", zap.Error(err))
			}

			discoveryConfig, err := strg.DiscoveryConfigByID(ctx, discoveryID)
			if err != nil {
				logger.Fatal(ctx, "could not read discovery", zap.Error(err))
			}
			if discoveryConfig == nil {
				logger.Info(ctx, "discovery was deleted during the scan")

				return
			}
			printJSON(ctx, discoveryConfig)
		},
	}
	discoveryIDFlag(cmd, &id)

	return cmd
}

// validateCommand runs the pre-flight target validation.
func validateCommand(cfg *config.Config) *cobra.Command {
	var flags targetFlags
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validates a target configuration against the discovery limits",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			summary, err := discovery.ValidateTargetConfig(flags.target(), flags.hasGateway, discovery.NewPolicy(cfg))
			if err != nil {
				logger.Fatal(ctx, "invalid target configuration", zap.Error(err))
			}
			printJSON(ctx, map[string]any{
				"ipCount": summary.IPCount,
				"ports":   summary.Ports,
			})
		},
	}
	flags.register(cmd)

	return cmd
}

// resolveCommand prints the scan targets a configuration expands to.
func resolveCommand(cfg *config.Config) *cobra.Command {
	var flags targetFlags
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolves a target configuration into scan targets",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			res, err := newResolver(cfg).ResolveTargets(ctx, flags.target(), flags.hasGateway)
			if err != nil {
				logger.Fatal(ctx, "could not resolve targets", zap.Error(err))
			}
			printJSON(ctx, map[string]any{
				"targets":         res.Targets,
				"filteredPrivate": res.FilteredPrivate,
				"unresolved":      res.Unresolved,
			})
		},
	}
	flags.register(cmd)

	return cmd
}
