package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/diwise/service-chassis/pkg/infrastructure/env"
)

type FlagType int
type FlagMap map[FlagType]string

const (
	listenAddress FlagType = iota
	servicePort

	configPath
	opaPath

	sparqlDebug
)

func DefaultFlags() FlagMap {
	return FlagMap{
		listenAddress: "", // listen on all ipv4 and ipv6 interfaces
		servicePort:   "8080",

		configPath: "/opt/diwise/config/heritage-broker.yaml",
		opaPath:    "/opt/diwise/config/authz.rego",

		sparqlDebug: "false",
	}
}

func parseExternalConfig(ctx context.Context, flags FlagMap) FlagMap {

	// Allow environment variables to override certain defaults
	envOrDef := env.GetVariableOrDefault
	flags[servicePort] = envOrDef(ctx, "SERVICE_PORT", flags[servicePort])
	flags[configPath] = envOrDef(ctx, "HERITAGE_CONFIG_PATH", flags[configPath])
	flags[opaPath] = envOrDef(ctx, "HERITAGE_POLICIES_PATH", flags[opaPath])
	flags[sparqlDebug] = envOrDef(ctx, "SPARQL_DEBUG", flags[sparqlDebug])

	apply := func(f FlagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("config", fmt.Sprintf("path to the source configuration file (default %s)", flags[configPath]), apply(configPath))
	flag.Func("policies", fmt.Sprintf("path to the authorization policies (default %s)", flags[opaPath]), apply(opaPath))
	flag.Parse()

	return flags
}

// PostgresConfig is used for process sources that use the pgx driver without
// an explicit dsn
type PostgresConfig struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func LoadPostgresConfig(ctx context.Context) PostgresConfig {
	return PostgresConfig{
		host:     env.GetVariableOrDefault(ctx, "POSTGRES_HOST", ""),
		user:     env.GetVariableOrDefault(ctx, "POSTGRES_USER", ""),
		password: env.GetVariableOrDefault(ctx, "POSTGRES_PASSWORD", ""),
		port:     env.GetVariableOrDefault(ctx, "POSTGRES_PORT", "5432"),
		dbname:   env.GetVariableOrDefault(ctx, "POSTGRES_DBNAME", "heritage"),
		sslmode:  env.GetVariableOrDefault(ctx, "POSTGRES_SSLMODE", "disable"),
	}
}

func (c PostgresConfig) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}
