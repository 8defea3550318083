package services

import (
	"errors"
	"unicode"

	"gorm.io/gorm"

	"github.com/macadoo18/growing-up-server/models"
	"github.com/macadoo18/growing-up-server/utils"
)

// Validation failures double as wire messages, so the text is exact.
var (
	ErrPasswordTooShort      = errors.New("Password must be at least 8 characters")
	ErrPasswordTooLong       = errors.New("Password must be less than 72 characters")
	ErrPasswordHasWhitespace = errors.New("Password must not start with or end with spaces")
	ErrPasswordNotComplex    = errors.New("Password must include at least 1 uppercase, 1 lowercase, and 1 number")
	ErrUsernameTaken         = errors.New("Username already taken")
	ErrInvalidCredentials    = errors.New("Incorrect username or password")
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// ValidatePassword enforces the signup password policy.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return ErrPasswordTooShort
	}
	if len(password) > 72 {
		return ErrPasswordTooLong
	}
	if password[0] == ' ' || password[len(password)-1] == ' ' {
		return ErrPasswordHasWhitespace
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return ErrPasswordNotComplex
	}
	return nil
}

// Create validates the password policy and username uniqueness, hashes the
// password, and inserts the user.
func (s *UserService) Create(firstName, lastName, username, password string) (*models.User, error) {
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		FirstName: firstName,
		LastName:  lastName,
		Username:  username,
		Password:  hashed,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate checks the credentials and returns the user. Unknown usernames
// and bad passwords are indistinguishable to the caller.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Serialize returns a sanitized copy safe to hand to clients. The password
// hash is excluded by the model's json tag.
func (s *UserService) Serialize(user models.User) models.User {
	user.FirstName = utils.Sanitize(user.FirstName)
	user.LastName = utils.Sanitize(user.LastName)
	user.Username = utils.Sanitize(user.Username)
	return user
}
