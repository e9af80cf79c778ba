// internal/auth/verifier.go
package auth

import (
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalid covers every verification failure: bad signature, expiry,
// wrong issuer, malformed token.
var ErrTokenInvalid = errors.New("invalid or expired token")

// Identity is the result of a successful bearer-token verification. Roles
// are already normalized into the policy vocabulary.
type Identity struct {
	Subject string
	Roles   []string
}

// Claims mirrors the identity provider's access token. Realm roles live in
// the nested realm_access claim; when it is absent the caller is simply
// authenticated with no special roles.
type Claims struct {
	RealmAccess struct {
		Roles []string `json:"roles"`
	} `json:"realm_access"`
	jwt.RegisteredClaims
}

// Verifier validates bearer tokens against the identity provider's JWKS.
// Key material is fetched lazily from {issuer}/protocol/openid-connect/certs
// and cached; an unknown key ID triggers one refresh.
type Verifier struct {
	issuer string
	client *http.Client

	mu   sync.RWMutex
	keys map[string]*rsa.PublicKey
}

func NewVerifier(issuer string) *Verifier {
	return &Verifier{
		issuer: issuer,
		client: &http.Client{Timeout: 5 * time.Second},
		keys:   make(map[string]*rsa.PublicKey),
	}
}

// Verify checks signature, issuer and expiry, then extracts the subject and
// realm roles. The token audience is deliberately not validated: resource
// servers in this deployment accept any audience issued by the trusted
// realm.
func (v *Verifier) Verify(rawToken string) (*Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, v.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(v.issuer),
	)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	return &Identity{
		Subject: claims.Subject,
		Roles:   PrefixRoles(claims.RealmAccess.Roles),
	}, nil
}

func (v *Verifier) keyFunc(token *jwt.Token) (interface{}, error) {
	kid, _ := token.Header["kid"].(string)
	if kid == "" {
		return nil, errors.New("token header has no kid")
	}

	v.mu.RLock()
	key, ok := v.keys[kid]
	v.mu.RUnlock()
	if ok {
		return key, nil
	}

	if err := v.refreshKeys(); err != nil {
		return nil, err
	}

	v.mu.RLock()
	key, ok = v.keys[kid]
	v.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no signing key with kid %q", kid)
	}
	return key, nil
}

type jwksDocument struct {
	Keys []jwksKey `json:"keys"`
}

type jwksKey struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// refreshKeys fetches the JWKS document from the issuer, standard OIDC
// discovery layout.
func (v *Verifier) refreshKeys() error {
	jwksURI := fmt.Sprintf("%s/protocol/openid-connect/certs", v.issuer)
	resp, err := v.client.Get(jwksURI)
	if err != nil {
		return fmt.Errorf("failed to fetch JWKS: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to fetch JWKS: status %d", resp.StatusCode)
	}

	var doc jwksDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return fmt.Errorf("failed to decode JWKS: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey)
	for _, k := range doc.Keys {
		if k.Kty != "RSA" || k.Kid == "" {
			continue
		}
		pub, err := parseRSAKey(k)
		if err != nil {
			continue
		}
		keys[k.Kid] = pub
	}

	v.mu.Lock()
	v.keys = keys
	v.mu.Unlock()
	return nil
}

func parseRSAKey(k jwksKey) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, err
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, err
	}

	e := 0
	for _, b := range eBytes {
		e = e<<8 | int(b)
	}
	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: e,
	}, nil
}
