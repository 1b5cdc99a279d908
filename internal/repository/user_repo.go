package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/smartcampus-id/campus-backend/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Save(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByStudentID(ctx context.Context, studentID string) (*model.User, error)
	FindAll(ctx context.Context) ([]*model.User, error)
	FindPage(ctx context.Context, page, limit int) ([]*model.User, int64, error)
	FindByRole(ctx context.Context, role model.UserRole) ([]*model.User, error)
	FindByDepartment(ctx context.Context, department string) ([]*model.User, error)
	FindByRoleAndDepartment(ctx context.Context, role model.UserRole, department string) ([]*model.User, error)
	FindByActive(ctx context.Context, isActive bool) ([]*model.User, error)
	FindActiveByRole(ctx context.Context, role model.UserRole) ([]*model.User, error)
	FindActiveByDepartment(ctx context.Context, department string) ([]*model.User, error)
	Search(ctx context.Context, term string) ([]*model.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByStudentID(ctx context.Context, studentID string) (bool, error)
	ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error)
	Count(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role model.UserRole) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Save(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByStudentID(ctx context.Context, studentID string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("student_id = ?", studentID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindPage(ctx context.Context, page, limit int) ([]*model.User, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []*model.User
	offset := (page - 1) * limit
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *userRepository) FindByRole(ctx context.Context, role model.UserRole) ([]*model.User, error) {
	var users []*model.User
	if err := r.db.WithContext(ctx).Where("role = ?", role).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindByDepartment(ctx context.Context, department string) ([]*model.User, error) {
	var users []*model.User
	if err := r.db.WithContext(ctx).Where("department = ?", department).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindByRoleAndDepartment(ctx context.Context, role model.UserRole, department string) ([]*model.User, error) {
	var users []*model.User
	if err := r.db.WithContext(ctx).
		Where("role = ? AND department = ?", role, department).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindByActive(ctx context.Context, isActive bool) ([]*model.User, error) {
	var users []*model.User
	if err := r.db.WithContext(ctx).Where("is_active = ?", isActive).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindActiveByRole(ctx context.Context, role model.UserRole) ([]*model.User, error) {
	var users []*model.User
	if err := r.db.WithContext(ctx).
		Where("role = ? AND is_active = ?", role, true).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindActiveByDepartment(ctx context.Context, department string) ([]*model.User, error) {
	var users []*model.User
	if err := r.db.WithContext(ctx).
		Where("department = ? AND is_active = ?", department, true).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Search matches the term as a substring of first name, last name,
// username or email. Case sensitivity follows the store collation.
func (r *userRepository) Search(ctx context.Context, term string) ([]*model.User, error) {
	var users []*model.User
	pattern := "%" + term + "%"
	if err := r.db.WithContext(ctx).
		Where("first_name LIKE ? OR last_name LIKE ? OR username LIKE ? OR email LIKE ?",
			pattern, pattern, pattern, pattern).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username = ?", username)
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email = ?", email)
}

func (r *userRepository) ExistsByStudentID(ctx context.Context, studentID string) (bool, error) {
	return r.exists(ctx, "student_id = ?", studentID)
}

func (r *userRepository) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	return r.exists(ctx, "employee_id = ?", employeeID)
}

func (r *userRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Where(query, arg).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *userRepository) CountByRole(ctx context.Context, role model.UserRole) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Where("role = ?", role).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.User{}, "id = ?", id).Error
}
