package jwt

import (
	"errors"
	"fmt"
	"time"

	"TrackFit-Backend/domain"
	"TrackFit-Backend/internal/utils"

	"github.com/gofiber/fiber/v2/log"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

type (
	JWTService interface {
		GenerateTokenUser(userID string, email string) string
		ValidateTokenUser(token string) (*jwt.Token, error)
		GetUserByToken(token string) (TokenUser, error)
	}

	// TokenUser is the identity carried by an access token issued by the
	// auth provider. UserID comes from the "sub" claim.
	TokenUser struct {
		UserID string
		Email  string
		Role   string
	}

	jwtUserClaim struct {
		Email string `json:"email"`
		Role  string `json:"role"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
		audience  string
	}
)

func NewJWTService() JWTService {
	utils.LoadConfig()
	secretKey := utils.GetConfig("JWT_SECRET")
	if secretKey == "" {
		log.Warn("JWT_SECRET not set, every token will be rejected")
	}
	return &jwtService{
		secretKey: secretKey,
		issuer:    utils.GetConfig("JWT_ISSUER"),
		audience:  utils.GetConfig("JWT_AUDIENCE"),
	}
}

// GenerateTokenUser mints a token shaped like the auth provider's. The API
// never hands these out; they exist for local development and tests.
func (j *jwtService) GenerateTokenUser(userID string, email string) string {
	claims := jwtUserClaim{
		Email: email,
		Role:  domain.RoleAuthenticated,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute * 120)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    j.issuer,
		},
	}
	if j.audience != "" {
		claims.Audience = jwt.ClaimStrings{j.audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tx, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		log.Errorf("failed to sign token: %v", err)
	}
	return tx
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	if j.secretKey == "" {
		return nil, domain.ErrTokenInvalid
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateTokenUser(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtUserClaim{}, j.parseToken)
}

func (j *jwtService) GetUserByToken(token string) (TokenUser, error) {
	t_Token, err := j.ValidateTokenUser(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return TokenUser{}, domain.ErrTokenExpired
		}
		return TokenUser{}, domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return TokenUser{}, domain.ErrTokenInvalid
	}

	claims, ok := t_Token.Claims.(*jwtUserClaim)
	if !ok {
		return TokenUser{}, domain.ErrTokenInvalid
	}
	if j.issuer != "" && !claims.VerifyIssuer(j.issuer, true) {
		return TokenUser{}, domain.ErrTokenInvalid
	}
	if j.audience != "" && !claims.VerifyAudience(j.audience, true) {
		return TokenUser{}, domain.ErrTokenInvalid
	}
	if claims.Role != "" && claims.Role != domain.RoleAuthenticated {
		return TokenUser{}, domain.ErrTokenInvalid
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return TokenUser{}, domain.ErrParseUUID
	}

	return TokenUser{
		UserID: claims.Subject,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
