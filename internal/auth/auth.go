package auth

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Vladimir-Maksimov/education/internal/db"
	"github.com/Vladimir-Maksimov/education/internal/models"
)

const userKey = "user_id"

var (
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password;
	// callers must not tell the two apart to the end user.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrAccountDisabled = errors.New("account disabled")
)

// Register creates a user with a bcrypt hash of the password. The raw
// password is never persisted.
func Register(database *gorm.DB, firstName, lastName, email, password string) (*models.User, error) {
	var existing models.User
	err := database.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateEmail
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := database.Create(&user).Error; err != nil {
		// Backstop for a concurrent registration slipping past the pre-check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return &user, nil
}

// Authenticate verifies the password against the stored hash. Disabled
// accounts are rejected even with the right password.
func Authenticate(database *gorm.DB, email, password string) (*models.User, error) {
	var user models.User
	if err := database.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	return &user, nil
}

// LogIn marks the session as authenticated for the given user.
func LogIn(sess sessions.Session, user *models.User) error {
	sess.Set(userKey, user.ID)
	return sess.Save()
}

// LogOut clears the whole session, cart included.
func LogOut(sess sessions.Session) error {
	sess.Clear()
	return sess.Save()
}

// RequireAuth redirects unauthenticated requests to the login page and
// injects *models.User into the context for handlers.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		userID, ok := sess.Get(userKey).(uint)
		if !ok || userID == 0 {
			c.Redirect(http.StatusFound, "/login/")
			c.Abort()
			return
		}

		var user models.User
		if err := db.DB.First(&user, userID).Error; err != nil {
			c.Redirect(http.StatusFound, "/login/")
			c.Abort()
			return
		}
		c.Set("user", &user)
		c.Next()
	}
}

// CurrentUser returns the user attached by RequireAuth, or nil outside it.
func CurrentUser(c *gin.Context) *models.User {
	if u, ok := c.Get("user"); ok {
		return u.(*models.User)
	}
	return nil
}
