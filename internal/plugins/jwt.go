package plugins

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-gatekeeper/internal/response"
	"github.com/MKhiriev/go-gatekeeper/internal/runloop"
	"github.com/MKhiriev/go-gatekeeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// JWTName is the registry name of the jwt plugin.
const JWTName = "jwt"

// ConsumerHeader carries the token subject to the upstream.
const ConsumerHeader = "X-Consumer-Username"

var errNoToken = errors.New("no token found in request")

type jwtConfig struct {
	Secret        string   `json:"secret"`
	Issuer        string   `json:"issuer"`
	HeaderNames   []string `json:"header_names"`
	URIParamNames []string `json:"uri_param_names"`
}

// jwtAuth rejects requests that do not carry a valid HS256 token.
type jwtAuth struct {
	secret      []byte
	parser      *jwt.Parser
	headerNames []string
	paramNames  []string
}

func newJWT(config map[string]any) (runloop.Plugin, error) {
	var cfg jwtConfig
	if err := decodeConfig(config, &cfg); err != nil {
		return nil, err
	}
	if cfg.Secret == "" {
		return nil, fmt.Errorf("%w: secret is required", ErrInvalidConfig)
	}
	if len(cfg.HeaderNames) == 0 {
		cfg.HeaderNames = []string{"Authorization"}
	}
	if cfg.URIParamNames == nil {
		cfg.URIParamNames = []string{"jwt"}
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}

	return &jwtAuth{
		secret:      []byte(cfg.Secret),
		parser:      jwt.NewParser(opts...),
		headerNames: cfg.HeaderNames,
		paramNames:  cfg.URIParamNames,
	}, nil
}

func (p *jwtAuth) Name() string { return JWTName }

// Access validates the token and forwards its subject upstream.
func (p *jwtAuth) Access(pdk *runloop.PDK) (response.Result, error) {
	token, err := p.authenticate(pdk.Request)
	if err != nil {
		pdk.Log.Debug().Err(err).Msg("request rejected")
		return pdk.Response.Exit(http.StatusUnauthorized, map[string]string{"message": "Unauthorized"}, nil)
	}

	consumer, err := token.Consumer()
	if err != nil {
		pdk.Log.Debug().Err(err).Msg("request rejected")
		return pdk.Response.Exit(http.StatusUnauthorized, map[string]string{"message": "Unauthorized"}, nil)
	}
	pdk.Request.Header.Set(ConsumerHeader, consumer)

	return response.Continue, nil
}

func (p *jwtAuth) authenticate(r *http.Request) (*models.Token, error) {
	raw := p.extract(r)
	if raw == "" {
		return nil, errNoToken
	}

	token := &models.Token{SignedString: raw}
	parsed, err := p.parser.ParseWithClaims(raw, &token.RegisteredClaims, func(*jwt.Token) (any, error) {
		return p.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("error validating token: %w", err)
	}
	token.Token = parsed

	return token, nil
}

// extract looks for a token in the configured headers, then in the
// configured query parameters.
func (p *jwtAuth) extract(r *http.Request) string {
	for _, name := range p.headerNames {
		value := strings.TrimSpace(r.Header.Get(name))
		if value == "" {
			continue
		}
		if scheme, token, ok := strings.Cut(value, " "); ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return value
	}

	query := r.URL.Query()
	for _, name := range p.paramNames {
		if value := query.Get(name); value != "" {
			return value
		}
	}

	return ""
}
