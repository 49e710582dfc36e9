package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/redmane/redmane/pkg/config"
	"github.com/redmane/redmane/pkg/contract"
	"github.com/redmane/redmane/pkg/entities"
	"github.com/redmane/redmane/pkg/utils"
)

type keycloakClaims struct {
	jwt.RegisteredClaims
	Email       *string `json:"email,omitempty"`
	RealmAccess struct {
		Roles []string `json:"roles"`
	} `json:"realm_access"`
}

// KeycloakAuthenticator verifies RS256 bearer tokens against the realm's published keys.
type KeycloakAuthenticator struct {
	keys    *JWKSCache
	options []jwt.ParserOption
}

func JWKSURL(cfg config.KeycloakConfig) string {
	return fmt.Sprintf("%s/realms/%s/protocol/openid-connect/certs", strings.TrimRight(cfg.URL, "/"), cfg.Realm)
}

func NewKeycloakAuthenticator(cfg config.KeycloakConfig) *KeycloakAuthenticator {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
	}

	if cfg.VerifyAudience {
		options = append(options, jwt.WithAudience(cfg.ClientID))
	}

	return &KeycloakAuthenticator{
		keys: NewJWKSCache(
			JWKSURL(cfg), &http.Client{Timeout: cfg.HTTPTimeout}, cfg.JWKSCacheTTL, cfg.JWKSMinRefresh,
		),
		options: options,
	}
}

func bearerToken(authorization string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authorization), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}

func (a *KeycloakAuthenticator) Authenticate(
	ctx context.Context, authorization string,
) (*entities.AuthUser, *contract.Error) {
	tokenString, ok := bearerToken(authorization)
	if !ok {
		return nil, contract.NewError(contract.Unauthenticated, "Missing bearer token")
	}

	claims := &keycloakClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		kid, _ := token.Header["kid"].(string)

		return a.keys.Key(ctx, kid)
	}, a.options...)
	if err != nil {
		switch {
		case errors.Is(err, ErrKeyProviderUnavailable):
			return nil, contract.NewErrorWith(contract.InternalError, "Unable to fetch signing keys", err)
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, contract.NewErrorWith(contract.Unauthenticated, "Token has expired", err)
		default:
			logrus.WithContext(ctx).WithError(err).Debug("rejected bearer token")

			return nil, contract.NewErrorWith(contract.Unauthenticated, "Invalid token", err)
		}
	}

	roles := claims.RealmAccess.Roles

	return &entities.AuthUser{
		UserID: claims.Subject,
		Email:  claims.Email,
		Roles:  utils.NonNil(roles),
	}, nil
}
