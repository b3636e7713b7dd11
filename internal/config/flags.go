package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-f temporary upload directory
//	-c/-config json file path with configs
//	-request-timeout request read timeout (e.g., "30s", "1m")
//	-max-upload-size mint request body limit in bytes
//	-engine-url relay base URL
//	-access-token relay access token
//	-backend-wallet relay backend wallet
//	-contract-address ERC-721 contract address
//	-secret-key storage secret key
//	-chain relay chain identifier
//	-server server address used by the client
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var tempDir string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var maxUploadSize int64
	var engineURL string
	var accessToken string
	var backendWallet string
	var contractAddress string
	var secretKey string
	var chain string
	var clientServerAddress string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&tempDir, "f", "", "Temporary upload directory")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.Int64Var(&maxUploadSize, "max-upload-size", 0, "Mint request body limit in bytes")
	flag.StringVar(&engineURL, "engine-url", "", "Transaction relay URL")
	flag.StringVar(&accessToken, "access-token", "", "Transaction relay access token")
	flag.StringVar(&backendWallet, "backend-wallet", "", "Relay backend wallet")
	flag.StringVar(&contractAddress, "contract-address", "", "NFT contract address")
	flag.StringVar(&secretKey, "secret-key", "", "Storage secret key")
	flag.StringVar(&chain, "chain", "", "Chain identifier")
	flag.StringVar(&clientServerAddress, "server", "", "nft-creator server address used by the client")

	flag.Parse()

	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			MaxUploadSize:  maxUploadSize,
		},
		Mint: Mint{
			EngineURL:       engineURL,
			AccessToken:     accessToken,
			BackendWallet:   backendWallet,
			ContractAddress: contractAddress,
			SecretKey:       secretKey,
			Chain:           chain,
		},
		Adapter: Adapter{
			HTTPAddress: clientServerAddress,
		},
		Storage: Storage{
			Files: Files{
				TempDir: tempDir,
			},
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
