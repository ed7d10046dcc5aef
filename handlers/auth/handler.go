package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"academy-backend/db"
	"academy-backend/models"
	"academy-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Signup creates an organization with its first admin user and starts the
// free trial
// @Summary Sign up a new organization
// @Description Create an organization together with its first admin user. The organization starts on a 7-day trial.
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body models.SignupRequest true "Organization and admin account"
// @Success 201 {object} map[string]interface{} "message: Organization created"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 409 {object} map[string]string "error: Email or slug already used"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /signup [post]
func Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if !utils.ValidateEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}
	if len(req.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The password must contain at least 6 characters"})
		return
	}

	hasLower := strings.ContainsAny(req.Password, "abcdefghijklmnopqrstuvwxyz")
	hasUpper := strings.ContainsAny(req.Password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	hasDigit := strings.ContainsAny(req.Password, "0123456789")
	if !hasLower || !hasUpper || !hasDigit {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The password must contain at least one lowercase, one uppercase and one digit"})
		return
	}

	if !utils.ValidateSlug(req.Organization.Slug) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid slug: lowercase letters, digits and dashes only"})
		return
	}

	var existingUser models.User
	if err := db.DB.Where("email = ?", req.Email).First(&existingUser).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "This email is already used"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error when checking the email existence"})
		return
	}

	var existingOrg models.Organization
	if err := db.DB.Where("slug = ?", req.Organization.Slug).First(&existingOrg).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "This slug is already used"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error when checking the slug existence"})
		return
	}

	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Error hashing the password"})
		return
	}

	org := models.Organization{
		Name:            req.Organization.Name,
		Slug:            req.Organization.Slug,
		Description:     req.Organization.Description,
		Email:           req.Organization.Email,
		PhoneNumber:     req.Organization.PhoneNumber,
		Location:        req.Organization.Location,
		GracePeriodDays: 7,
	}
	org.StartTrial(time.Now(), models.DefaultTrialDays)

	// the organization and its first admin are created together or not at all
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&org).Error; err != nil {
			return err
		}
		user := models.User{
			OrganizationID: &org.ID,
			Email:          req.Email,
			Password:       passwordHash,
			Name:           req.Name,
			Role:           models.AdminRole,
			Enable:         true,
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		utils.LogError(err, "Error creating organization during signup")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating the organization"})
		return
	}

	utils.LogSuccessWithOrg(org.ID, "Organization created with trial subscription")
	c.JSON(http.StatusCreated, gin.H{
		"message":      "Organization created",
		"organization": org,
	})
}

// Login authenticates a user and returns a JWT
// @Summary Log in
// @Description Authenticate with email and password, returns a JWT carrying the user, role and organization
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.UserLogin true "Credentials"
// @Success 200 {object} map[string]string "token: JWT"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Invalid credentials"
// @Router /login [post]
func Login(c *gin.Context) {
	var req models.UserLogin
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var user models.User
	if err := db.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !user.Enable {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account disabled"})
		return
	}

	if !checkPassword(user.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateJWT(user, 72)
	if err != nil {
		utils.LogError(err, "Error generating JWT during login")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
