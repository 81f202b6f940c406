package services

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"image/png"

	"estate-backend/internal/models"
	"estate-backend/internal/repositories"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"golang.org/x/crypto/bcrypt"
)

const (
	totpIssuer       = "EstateBackend"
	backupCodeCount  = 10
	backupCodeLength = 8
)

var (
	ErrNoTOTPSecret    = &TOTPError{Message: "2FA setup not initiated"}
	ErrInvalidTOTPCode = &TOTPError{Message: "invalid verification code"}
	ErrTOTPNotEnabled  = &TOTPError{Message: "2FA is not enabled"}
	ErrInvalidPassword = &TOTPError{Message: "invalid password"}
)

type TOTPError struct {
	Message string
}

func (e *TOTPError) Error() string {
	return e.Message
}

type TOTPService struct {
	userRepo *repositories.UserRepository
}

func NewTOTPService(userRepo *repositories.UserRepository) *TOTPService {
	return &TOTPService{userRepo: userRepo}
}

// GenerateSetup creates a new TOTP secret and QR code for a user
func (s *TOTPService) GenerateSetup(ctx context.Context, user *models.User) (*models.TOTPSetupResponse, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: user.Email,
		Period:      30,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return nil, err
	}

	// Stored but not yet enabled until the first code verifies
	if err := s.userRepo.SetTOTPSecret(ctx, user.ID, key.Secret()); err != nil {
		return nil, err
	}

	qrImage, err := key.Image(200, 200)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, qrImage); err != nil {
		return nil, err
	}

	return &models.TOTPSetupResponse{
		Secret:      key.Secret(),
		QRCode:      "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
		Issuer:      totpIssuer,
		AccountName: user.Email,
	}, nil
}

// VerifyAndEnable verifies a TOTP code, enables 2FA and returns backup codes
func (s *TOTPService) VerifyAndEnable(ctx context.Context, userID int, code string) ([]string, error) {
	secret, _, err := s.userRepo.GetTOTPSecret(ctx, userID)
	if err != nil {
		return nil, err
	}
	if secret == "" {
		return nil, ErrNoTOTPSecret
	}

	if !totp.Validate(code, secret) {
		return nil, ErrInvalidTOTPCode
	}

	if err := s.userRepo.EnableTOTP(ctx, userID); err != nil {
		return nil, err
	}
	return s.generateBackupCodes(ctx, userID)
}

// Verify validates a TOTP code or backup code during login
func (s *TOTPService) Verify(ctx context.Context, userID int, code string) (bool, error) {
	secret, enabled, err := s.userRepo.GetTOTPSecret(ctx, userID)
	if err != nil {
		return false, err
	}
	if !enabled || secret == "" {
		return false, ErrTOTPNotEnabled
	}

	if totp.Validate(code, secret) {
		return true, nil
	}
	if s.consumeBackupCode(ctx, userID, code) {
		return true, nil
	}
	return false, ErrInvalidTOTPCode
}

// Disable turns off 2FA after verifying password and current TOTP code
func (s *TOTPService) Disable(ctx context.Context, userID int, password, code string) error {
	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return ErrInvalidPassword
	}

	secret, _, err := s.userRepo.GetTOTPSecret(ctx, userID)
	if err != nil {
		return err
	}
	if !totp.Validate(code, secret) {
		return ErrInvalidTOTPCode
	}

	return s.userRepo.DisableTOTP(ctx, userID)
}

// generateBackupCodes creates fresh one-time codes, stored bcrypt-hashed
func (s *TOTPService) generateBackupCodes(ctx context.Context, userID int) ([]string, error) {
	codes := make([]string, backupCodeCount)
	hashed := make([]string, backupCodeCount)

	for i := 0; i < backupCodeCount; i++ {
		code := generateRandomCode(backupCodeLength)
		codes[i] = code

		hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashed[i] = string(hash)
	}

	hashedJSON, err := json.Marshal(hashed)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.SetBackupCodes(ctx, userID, string(hashedJSON)); err != nil {
		return nil, err
	}
	return codes, nil
}

// consumeBackupCode checks the code against stored hashes and removes it on match
func (s *TOTPService) consumeBackupCode(ctx context.Context, userID int, code string) bool {
	stored, err := s.userRepo.GetBackupCodes(ctx, userID)
	if err != nil || stored == "" {
		return false
	}

	var hashed []string
	if err := json.Unmarshal([]byte(stored), &hashed); err != nil {
		return false
	}

	for i, hash := range hashed {
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil {
			hashed = append(hashed[:i], hashed[i+1:]...)
			updated, _ := json.Marshal(hashed)
			s.userRepo.SetBackupCodes(ctx, userID, string(updated))
			return true
		}
	}
	return false
}

// generateRandomCode creates a random alphanumeric code
func generateRandomCode(length int) string {
	const charset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789" // Excludes similar chars: I, O, 0, 1
	code := make([]byte, length)
	randomBytes := make([]byte, length)
	rand.Read(randomBytes)
	for i := range code {
		code[i] = charset[int(randomBytes[i])%len(charset)]
	}
	return string(code)
}
