package lib

import (
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/ece-vision/Backend-Vision-Hub/src/models"
)

var validate = validator.New()

// ValidateStruct runs the shared validator against a request struct
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// Generates a JWT token for the given user ID
func GenerateJWT(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"exp":    time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "fallback-secret-key"
	}

	return token.SignedString([]byte(secret))
}

// Verifies and decodes a JWT token, returning its claims
func VerifyJWT(tokenString string) (jwt.MapClaims, error) {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "fallback-secret-key"
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(jwtSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
}

// Searches for a user by ID and excludes the password from the result
func FindUserByID(userID uint) (*models.User, error) {
	var user models.User
	err := DB.Select("id", "created_at", "updated_at", "full_name", "email", "role",
		"skills", "hall_ticket_number", "mobile", "is_blocked").
		First(&user, userID).Error

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// ProfileNames maps user IDs to display names for author resolution
func ProfileNames(userIDs []uint) (map[uint]string, error) {
	var users []models.User
	if err := DB.Select("id", "full_name").Where("id IN ?", userIDs).Find(&users).Error; err != nil {
		return nil, err
	}

	names := make(map[uint]string, len(users))
	for _, u := range users {
		names[u.ID] = u.FullName
	}
	return names, nil
}
