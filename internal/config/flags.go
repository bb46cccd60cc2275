package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"time"
)

// NetAddress is a host:port flag value.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses args (normally os.Args[1:]) into a [StructuredConfig].
//
// Flags:
//
//	-a                   server listen address host:port
//	-server-url          diary server base URL used by the client
//	-d                   database DSN
//	-c, -config          JSON config file path
//	-token-sign-key      JWT signing key
//	-token-issuer        JWT issuer
//	-token-duration      JWT lifetime (e.g. 720h)
//	-api-token           bearer token presented by the client
//	-request-timeout     server request timeout
//	-adapter-timeout     client request timeout
//	-liveness-path       connectivity probe endpoint
//	-liveness-timeout    connectivity probe timeout
//	-namespace           local cache key namespace
//	-max-entries         local cache entry bound
//	-link-poll-interval  network link poll interval
//	-cleanup-interval    retention cleanup interval
//	-log-file            client log file
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		serverAddress   NetAddress
		serverURL       string
		databaseDSN     string
		jsonConfigPath  string
		tokenSignKey    string
		tokenIssuer     string
		tokenDuration   time.Duration
		apiToken        string
		requestTimeout  time.Duration
		adapterTimeout  time.Duration
		livenessPath    string
		livenessTimeout time.Duration
		namespace       string
		maxEntries      int
		linkPoll        time.Duration
		cleanup         time.Duration
		logFile         string
	)

	fs := flag.NewFlagSet("diary", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&serverURL, "server-url", "", "Diary server base URL")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 720h)")
	fs.StringVar(&apiToken, "api-token", "", "Bearer token for the diary server")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Server request timeout")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Client request timeout")
	fs.StringVar(&livenessPath, "liveness-path", "", "Liveness endpoint path")
	fs.DurationVar(&livenessTimeout, "liveness-timeout", 0, "Liveness probe timeout")
	fs.StringVar(&namespace, "namespace", "", "Local cache key namespace")
	fs.IntVar(&maxEntries, "max-entries", 0, "Maximum cached entries")
	fs.DurationVar(&linkPoll, "link-poll-interval", 0, "Network link poll interval")
	fs.DurationVar(&cleanup, "cleanup-interval", 0, "Cache cleanup interval")
	fs.StringVar(&logFile, "log-file", "", "Client log file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			APIToken:      apiToken,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
			Cache: Cache{
				Namespace:  namespace,
				MaxEntries: maxEntries,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:     serverURL,
			RequestTimeout:  adapterTimeout,
			LivenessPath:    livenessPath,
			LivenessTimeout: livenessTimeout,
		},
		Workers: Workers{
			LinkPollInterval: linkPoll,
			CleanupInterval:  cleanup,
		},
		LogFile:      logFile,
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. An empty host listens on all interfaces; any other
// host must be "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
