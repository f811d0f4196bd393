package rpc

import (
	"bufio"
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// DefaultTimeout bounds a single round trip when Config.Timeout is zero.
const DefaultTimeout = 15 * time.Second

// Config is the connection configuration of one client. It is read once when the transport is
// built; later changes to the value have no effect on that transport.
type Config struct {
	URL        string        `env:"COREPC_RPC_URL" env-default:"http://127.0.0.1:18443" validate:"required,url"`
	User       string        `env:"COREPC_RPC_USER" validate:"excluded_with=CookieFile"`
	Password   string        `env:"COREPC_RPC_PASSWORD"`
	CookieFile string        `env:"COREPC_RPC_COOKIE_FILE"`
	Timeout    time.Duration `env:"COREPC_RPC_TIMEOUT" env-default:"15s" validate:"gte=0"`

	// Header is sent with every request, after authentication headers are set.
	Header http.Header `env:"-"`
	// TLS configures the client side of an https endpoint.
	TLS *tls.Config `env:"-"`
	// Proxy selects a proxy per request; nil uses the environment (HTTP_PROXY and friends).
	Proxy func(*http.Request) (*url.URL, error) `env:"-"`
}

var configValidator = validator.New()

// Validate checks the static fields of c.
func (c Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Credentials resolves basic-auth credentials. A cookie file wins over user and password.
// An empty user means no authentication.
func (c Config) Credentials() (user, password string, err error) {
	if c.CookieFile != "" {
		return ReadCookieFile(c.CookieFile)
	}
	return c.User, c.Password, nil
}

// ReadCookieFile reads the "user:password" line bitcoind writes to its .cookie file.
func ReadCookieFile(path string) (user, password string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrInvalidCookieFile, err)
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && line == "" {
		return "", "", fmt.Errorf("%w: %s is empty", ErrInvalidCookieFile, path)
	}
	line = strings.TrimRight(line, "\r\n")

	user, password, ok := strings.Cut(line, ":")
	if !ok || user == "" {
		return "", "", fmt.Errorf("%w: %s has no user:password", ErrInvalidCookieFile, path)
	}
	return user, password, nil
}

// LoadConfig reads Config from the environment. A .env file at dotenvPath is loaded first
// when it exists.
func LoadConfig(dotenvPath string) (Config, error) {
	if dotenvPath != "" {
		if _, err := os.Stat(dotenvPath); err == nil {
			if err := godotenv.Load(dotenvPath); err != nil {
				return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
			}
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, cfg.Validate()
}
