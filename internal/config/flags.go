package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the configuration flags in args.
//
// Flags:
//
//	-a proxy listen address in format [host]:[port]
//	-s status listen address in format [host]:[port]
//	-d database DSN (DB mode)
//	-declarative-config routes YAML file (DB-less mode)
//	-c/-config json file path with configs
//	-product-name product name of the Server header
//	-max-headers header enumeration cap for plugins
//	-log-level zerolog level name
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-upstream-timeout upstream call timeout (e.g., "10s")
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, statusAddress NetAddress
	var databaseDSN string
	var declarativePath string
	var jsonConfigPath string
	var productName string
	var maxHeaders int
	var logLevel string
	var requestTimeout time.Duration
	var upstreamTimeout time.Duration

	fs := flag.NewFlagSet("gatekeeper", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Proxy net address host:port")
	fs.Var(&statusAddress, "s", "Status server net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&declarativePath, "declarative-config", "", "Declarative routes YAML file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&productName, "product-name", "", "Product name of the Server header")
	fs.IntVar(&maxHeaders, "max-headers", 0, "Header enumeration cap for plugins")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&upstreamTimeout, "upstream-timeout", 0, "Upstream request timeout (e.g., 10s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			ProductName: productName,
			MaxHeaders:  maxHeaders,
			LogLevel:    logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Declarative: Declarative{
				Path: declarativePath,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			StatusAddress:  statusAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: upstreamTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither Host nor Port is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on all interfaces. Any other host must be
// "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" {
		if net.ParseIP(host) == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
