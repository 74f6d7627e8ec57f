package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/diwise/heritage-broker/internal/pkg/application/federation"
	"github.com/diwise/heritage-broker/internal/pkg/infrastructure/router"
	"github.com/diwise/heritage-broker/internal/pkg/infrastructure/sparql"
	"github.com/diwise/heritage-broker/internal/pkg/infrastructure/sqldb"
	"github.com/diwise/heritage-broker/internal/pkg/presentation/api"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

const serviceName string = "heritage-broker"

func main() {
	serviceVersion := buildinfo.SourceVersion()

	ctx, log, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion, "json")
	defer cleanup()

	flags := parseExternalConfig(ctx, DefaultFlags())

	cfgFile, err := os.Open(flags[configPath])
	if err != nil {
		log.Error("failed to open source configuration", "path", flags[configPath], "err", err.Error())
		os.Exit(1)
	}
	defer cfgFile.Close()

	policies, err := os.Open(flags[opaPath])
	if err != nil {
		log.Error("failed to open authorization policies", "path", flags[opaPath], "err", err.Error())
		os.Exit(1)
	}
	defer policies.Close()

	handler, closeSources, err := initialize(ctx, flags, cfgFile, policies)
	if err != nil {
		log.Error("failed to initialize service", "err", err.Error())
		os.Exit(1)
	}
	defer closeSources()

	address := flags[listenAddress] + ":" + flags[servicePort]
	log.Info("starting to listen for connections", "address", address)

	err = http.ListenAndServe(address, handler)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("failed to listen for connections", "err", err.Error())
	}
}

func initialize(ctx context.Context, flags FlagMap, cfgFile, policies io.Reader) (http.Handler, func(), error) {
	cfg, err := federation.LoadConfiguration(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load source configuration: %w", err)
	}

	metadata := make([]federation.MetadataSource, 0, len(cfg.MetadataSources))
	for _, mc := range cfg.MetadataSources {
		metadata = append(metadata, sparql.New(mc.ID, mc.Endpoint,
			sparql.Debug(mc.Debug || flags[sparqlDebug] == "true"),
			sparql.DefaultGraph(mc.DefaultGraph),
		))
	}

	processSources := make([]*sqldb.Source, 0, len(cfg.ProcessSources))
	closeSources := func() {
		for _, src := range processSources {
			src.Close()
		}
	}

	process := make([]federation.ProcessSource, 0, len(cfg.ProcessSources))
	for _, pc := range cfg.ProcessSources {
		dsn := pc.DSN
		if dsn == "" && pc.Driver == sqldb.DriverPostgres {
			dsn = LoadPostgresConfig(ctx).ConnStr()
		}

		src, err := sqldb.Open(ctx, pc.ID, pc.Driver, dsn)
		if err != nil {
			closeSources()
			return nil, nil, fmt.Errorf("failed to open process source %s: %w", pc.ID, err)
		}

		processSources = append(processSources, src)
		process = append(process, src)
	}

	app, err := federation.New(*cfg, metadata, process)
	if err != nil {
		closeSources()
		return nil, nil, err
	}

	logging.GetFromContext(ctx).Info("federation configured",
		"metadata_sources", len(metadata), "process_sources", len(process))

	r := router.New(serviceName)

	err = api.RegisterHandlers(ctx, r, policies, app)
	if err != nil {
		closeSources()
		return nil, nil, err
	}

	return r, closeSources, nil
}
