// Package tokens isola a obtenção de credenciais dos provedores. A captura
// do token em si acontece fora deste processo; aqui ele só precisa existir.
package tokens

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrTokenUnavailable indica que nenhuma credencial foi configurada.
var ErrTokenUnavailable = errors.New("token de acesso não configurado")

// Provider entrega uma credencial bearer válida ou falha.
type Provider interface {
	Token() (string, error)
}

// StaticProvider serve um token fixo vindo da configuração. Os tokens
// capturados são JWTs, então conseguimos inspecionar o exp sem validar a
// assinatura e avisar quando a credencial já nasceu vencida.
type StaticProvider struct {
	provider string
	token    string
}

func NewStaticProvider(provider, token string) *StaticProvider {
	token = strings.TrimSpace(token)
	token = strings.TrimPrefix(token, "Bearer ")
	token = strings.TrimPrefix(token, "bearer ")

	p := &StaticProvider{
		provider: provider,
		token:    token,
	}

	if expiresAt := p.ExpiresAt(); expiresAt != nil {
		logger := logrus.WithFields(logrus.Fields{
			"provider":   provider,
			"expires_at": expiresAt.Format(time.RFC3339),
		})

		if expiresAt.Before(time.Now()) {
			logger.Warn("Token configurado já está expirado; as extrações vão falhar com erro de autenticação")
		} else {
			logger.Info("Token configurado")
		}
	}

	return p
}

func (p *StaticProvider) Token() (string, error) {
	if p.token == "" {
		return "", ErrTokenUnavailable
	}
	return p.token, nil
}

// ExpiresAt devolve a expiração declarada no token, quando ele é um JWT
// com claim exp. Token opaco ou sem exp devolve nil.
func (p *StaticProvider) ExpiresAt() *time.Time {
	if p.token == "" {
		return nil
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()

	if _, _, err := parser.ParseUnverified(p.token, claims); err != nil {
		return nil
	}

	expiresAt, err := claims.GetExpirationTime()
	if err != nil || expiresAt == nil {
		return nil
	}

	return &expiresAt.Time
}
