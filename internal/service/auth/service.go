package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Principal администратор, извлеченный из токена
type Principal struct {
	AdminID  int64
	Username string
}

type claims struct {
	AdminID  int64  `json:"admin_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Service хеширование паролей и выпуск JWT (HS256)
type Service struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
	cost   int
}

// NewService создает сервис аутентификации
func NewService(secret string, ttl time.Duration, issuer string) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
		now:    time.Now,
		cost:   bcrypt.DefaultCost,
	}
}

// HashPassword возвращает bcrypt-хеш пароля
func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("%w: HashPassword - %v", ErrInternal, err)
	}
	return string(hash), nil
}

// CheckPassword сравнивает пароль с хешем
func (s *Service) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// IssueToken выпускает подписанный токен для администратора
func (s *Service) IssueToken(adminID int64, username string) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		AdminID:  adminID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: IssueToken - sign: %v", ErrInternal, err)
	}

	return signed, expiresAt, nil
}

// ValidateToken проверяет подпись и срок действия токена
func (s *Service) ValidateToken(tokenStr string) (*Principal, error) {
	c := &claims{}

	token, err := jwt.ParseWithClaims(tokenStr, c, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithTimeFunc(s.now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid || c.AdminID <= 0 {
		return nil, ErrInvalidToken
	}

	return &Principal{AdminID: c.AdminID, Username: c.Username}, nil
}
