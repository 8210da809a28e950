package auth

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"techrent/internal/database"
	"techrent/internal/domain"
	"techrent/internal/repository"
)

// NewAccount is the input for CreateAccount. UserName defaults to Email.
type NewAccount struct {
	Email                string
	UserName             string
	Password             string
	PhoneNumber          string
	EmailConfirmed       bool
	PhoneNumberConfirmed bool
	TwoFactorEnabled     bool
	Role                 string
}

// ProfileUpdate changes the editable profile flags of an account whose
// version is still Version. A non-nil Roles replaces the role set in the
// same transaction.
type ProfileUpdate struct {
	ID                   string
	Version              int64
	PhoneNumber          string
	EmailConfirmed       bool
	PhoneNumberConfirmed bool
	TwoFactorEnabled     bool
	Roles                []string
}

// IdentityStore owns accounts, password hashes and role assignments.
type IdentityStore struct {
	db         *gorm.DB
	bcryptCost int
}

func NewIdentityStore(db *gorm.DB) *IdentityStore {
	return &IdentityStore{db: db, bcryptCost: bcrypt.DefaultCost}
}

// WithBcryptCost is used by tests and the seeder to trade hash strength for speed.
func (s *IdentityStore) WithBcryptCost(cost int) *IdentityStore {
	s.bcryptCost = cost
	return s
}

func (s *IdentityStore) CreateAccount(ctx context.Context, acc NewAccount) (*domain.User, error) {
	acc.Email = strings.TrimSpace(acc.Email)
	acc.UserName = strings.TrimSpace(acc.UserName)
	if acc.UserName == "" {
		acc.UserName = acc.Email
	}

	reasons := PasswordProblems(acc.Password)
	if acc.Role != "" && !domain.IsKnownRole(acc.Role) {
		reasons = append(reasons, fmt.Sprintf("Role '%s' does not exist.", acc.Role))
	}
	taken, err := s.takenIdentifiers(ctx, acc.Email, acc.UserName)
	if err != nil {
		return nil, err
	}
	reasons = append(reasons, taken...)
	if len(reasons) > 0 {
		return nil, newIdentityError(reasons...)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(acc.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Email:                acc.Email,
		UserName:             acc.UserName,
		PasswordHash:         string(hash),
		PhoneNumber:          strings.TrimSpace(acc.PhoneNumber),
		EmailConfirmed:       acc.EmailConfirmed,
		PhoneNumberConfirmed: acc.PhoneNumberConfirmed,
		TwoFactorEnabled:     acc.TwoFactorEnabled,
		Version:              1,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Roles", "Bookings", "Reviews").Create(user).Error; err != nil {
			return err
		}
		if acc.Role == "" {
			return nil
		}
		return tx.Create(&domain.UserRole{UserID: user.ID, Role: acc.Role}).Error
	})
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, newIdentityError(fmt.Sprintf("Email '%s' is already taken.", acc.Email))
		}
		return nil, err
	}
	return user, nil
}

func (s *IdentityStore) takenIdentifiers(ctx context.Context, email, userName string) ([]string, error) {
	var reasons []string

	var n int64
	if err := s.db.WithContext(ctx).Model(&domain.User{}).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		Count(&n).Error; err != nil {
		return nil, err
	}
	if n > 0 {
		reasons = append(reasons, fmt.Sprintf("Email '%s' is already taken.", email))
	}

	if !strings.EqualFold(email, userName) {
		if err := s.db.WithContext(ctx).Model(&domain.User{}).
			Where("LOWER(user_name) = ?", strings.ToLower(userName)).
			Count(&n).Error; err != nil {
			return nil, err
		}
		if n > 0 {
			reasons = append(reasons, fmt.Sprintf("Username '%s' is already taken.", userName))
		}
	}
	return reasons, nil
}

func (s *IdentityStore) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *IdentityStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := s.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *IdentityStore) CheckPassword(u *domain.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

func (s *IdentityStore) UpdateProfile(ctx context.Context, p ProfileUpdate) (repository.UpdateStatus, error) {
	var roles []string
	if p.Roles != nil {
		var err error
		if roles, err = normalizeRoles(p.Roles); err != nil {
			return repository.UpdateConflict, err
		}
	}

	var status repository.UpdateStatus
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		status, err = repository.UpdateVersioned(ctx, tx, &domain.User{}, p.ID, p.Version, map[string]any{
			"phone_number":           strings.TrimSpace(p.PhoneNumber),
			"email_confirmed":        p.EmailConfirmed,
			"phone_number_confirmed": p.PhoneNumberConfirmed,
			"two_factor_enabled":     p.TwoFactorEnabled,
		})
		if err != nil || status != repository.Updated || p.Roles == nil {
			return err
		}
		return setRoles(tx, p.ID, roles)
	})
	if err != nil {
		return repository.UpdateConflict, err
	}
	return status, nil
}

// DeleteAccount removes the account and its role assignments. An actor can
// never delete their own account.
func (s *IdentityStore) DeleteAccount(ctx context.Context, actorID, userID string) error {
	if actorID == userID {
		return ErrSelfDelete
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&domain.UserRole{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", userID).Delete(&domain.User{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAccountNotFound
		}
		return nil
	})
}

// RolesFor returns the account's roles sorted by name.
func (s *IdentityStore) RolesFor(ctx context.Context, userID string) ([]string, error) {
	var roles []string
	err := s.db.WithContext(ctx).Model(&domain.UserRole{}).
		Where("user_id = ?", userID).
		Order("role ASC").
		Pluck("role", &roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}

// ReplaceRoles swaps the whole role set of an account in one transaction.
func (s *IdentityStore) ReplaceRoles(ctx context.Context, userID string, roles []string) error {
	uniq, err := normalizeRoles(roles)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&domain.User{}).Where("id = ?", userID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrAccountNotFound
		}
		return setRoles(tx, userID, uniq)
	})
}

// normalizeRoles rejects unknown roles and returns the set sorted, without
// duplicates.
func normalizeRoles(roles []string) ([]string, error) {
	seen := make(map[string]bool, len(roles))
	uniq := make([]string, 0, len(roles))
	for _, r := range roles {
		if !domain.IsKnownRole(r) {
			return nil, newIdentityError(fmt.Sprintf("Role '%s' does not exist.", r))
		}
		if !seen[r] {
			seen[r] = true
			uniq = append(uniq, r)
		}
	}
	sort.Strings(uniq)
	return uniq, nil
}

func setRoles(tx *gorm.DB, userID string, roles []string) error {
	if err := tx.Where("user_id = ?", userID).Delete(&domain.UserRole{}).Error; err != nil {
		return err
	}
	for _, r := range roles {
		if err := tx.Create(&domain.UserRole{UserID: userID, Role: r}).Error; err != nil {
			return err
		}
	}
	return nil
}

// PrimaryRole picks the role carried in access tokens.
func PrimaryRole(roles []string) string {
	for _, r := range roles {
		if r == domain.RoleAdmin {
			return domain.RoleAdmin
		}
	}
	if len(roles) > 0 {
		return roles[0]
	}
	return domain.RoleUser
}
