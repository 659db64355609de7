package security

import (
	"errors"
	"time"

	"satsang/internal/ports"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken  = errors.New("token inválido")
	ErrMissingSecret = errors.New("segredo JWT não configurado")
)

const tokenTTL = time.Hour

// identityClaims são as claims emitidas pelo provedor de identidade.
type identityClaims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// JWTService implementa a interface TokenService.
type JWTService struct {
	secretKey []byte
	issuer    string
	now       func() time.Time
}

// NewJWTService cria uma nova instância de JWTService. issuer vazio desativa a checagem de emissor.
func NewJWTService(secret, issuer string) *JWTService {
	return &JWTService{
		secretKey: []byte(secret),
		issuer:    issuer,
		now:       time.Now,
	}
}

// GenerateToken gera um token para o participante. Usado por ferramentas e testes;
// em produção o token vem do provedor.
func (s *JWTService) GenerateToken(userID, displayName string) (string, int64, error) {
	if len(s.secretKey) == 0 {
		return "", 0, ErrMissingSecret
	}

	now := s.now()
	claims := identityClaims{
		Name: displayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", 0, err
	}

	return signedToken, int64(tokenTTL / time.Second), nil // Retorna segundos
}

// ValidateToken valida o token JWT e retorna a identidade do participante.
func (s *JWTService) ValidateToken(tokenString string) (*ports.Identity, error) {
	if len(s.secretKey) == 0 {
		return nil, ErrMissingSecret
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	var claims identityClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	}, opts...)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &ports.Identity{UserID: claims.Subject, DisplayName: claims.Name}, nil
}
