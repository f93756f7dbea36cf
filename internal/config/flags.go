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
//	-d database DSN
//	-ratings-key rating service API key
//	-ratings-base-url rating service base URL
//	-ratings-timeout rating lookup timeout (e.g., "5s")
//	-session-sign-key session token signing key
//	-session-duration session token lifetime (e.g., "12h")
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var ratingsKey string
	var ratingsBaseURL string
	var ratingsTimeout time.Duration
	var sessionSignKey string
	var sessionDuration time.Duration
	var requestTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&ratingsKey, "ratings-key", "", "Rating service API key")
	flag.StringVar(&ratingsBaseURL, "ratings-base-url", "", "Rating service base URL")
	flag.DurationVar(&ratingsTimeout, "ratings-timeout", 0, "Rating lookup timeout (e.g., 5s)")
	flag.StringVar(&sessionSignKey, "session-sign-key", "", "Session token signing key")
	flag.DurationVar(&sessionDuration, "session-duration", 0, "Session token lifetime (e.g., 12h)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DBConfig{
				DSN: databaseDSN,
			},
		},
		Ratings: Ratings{
			APIKey:  ratingsKey,
			BaseURL: ratingsBaseURL,
			Timeout: ratingsTimeout,
		},
		Session: Session{
			SignKey:  sessionSignKey,
			Duration: sessionDuration,
		},
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
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
