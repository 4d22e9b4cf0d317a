package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
)

var (
	errAddressFormat = errors.New("need address in a form `host:port`")
	errPortRange     = errors.New("port number must be in range 1..65535")
	errAddressHost   = errors.New("host must be localhost or an IP address")
)

// NetAddress is a host:port flag value. An empty host listens on every
// interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags reads the backend command line:
//
//	-a host:port            listen address
//	-d dsn                  PostgreSQL DSN
//	-c, -config path        JSON config file
//	-token-sign-key key
//	-token-issuer name
//	-token-duration 1h
//	-request-timeout 30s
//	-version v
func ParseFlags(args []string) (*StructuredConfig, error) {
	cfg := new(StructuredConfig)
	var addr NetAddress

	fs := flag.NewFlagSet("flashcards-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&addr, "a", "listen address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "database DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "token lifetime")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "request timeout")
	fs.StringVar(&cfg.App.Version, "version", "", "application version")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	cfg.Server.HTTPAddress = addr.String()
	return cfg, nil
}

func (a *NetAddress) String() string {
	if *a == (NetAddress{}) {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set implements flag.Value.
func (a *NetAddress) Set(s string) error {
	host, rawPort, ok := strings.Cut(s, ":")
	if !ok || strings.Contains(rawPort, ":") {
		return errAddressFormat
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("%w: %w", errAddressFormat, err)
	}
	if port < 1 || port > 65535 {
		return errPortRange
	}
	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errAddressHost
	}

	*a = NetAddress{Host: host, Port: port}
	return nil
}
