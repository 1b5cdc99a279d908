package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/smartcampus-id/campus-backend/internal/dto"
	"github.com/smartcampus-id/campus-backend/internal/model"
	"github.com/smartcampus-id/campus-backend/internal/repository"
	"github.com/smartcampus-id/campus-backend/pkg/apperror"
)

type UserService interface {
	Create(ctx context.Context, input dto.CreateUserInput) (*model.User, error)
	GetAll(ctx context.Context) ([]*model.User, error)
	GetPage(ctx context.Context, filter dto.UserPageFilter) (*dto.PaginatedUserResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByStudentID(ctx context.Context, studentID string) (*model.User, error)
	GetByRole(ctx context.Context, role model.UserRole) ([]*model.User, error)
	GetByDepartment(ctx context.Context, department string) ([]*model.User, error)
	GetByRoleAndDepartment(ctx context.Context, role model.UserRole, department string) ([]*model.User, error)
	GetByActive(ctx context.Context, isActive bool) ([]*model.User, error)
	GetActiveByRole(ctx context.Context, role model.UserRole) ([]*model.User, error)
	GetActiveByDepartment(ctx context.Context, department string) ([]*model.User, error)
	Search(ctx context.Context, term string) ([]*model.User, error)
	Update(ctx context.Context, id uuid.UUID, input dto.UpdateUserInput) (*model.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Activate(ctx context.Context, id uuid.UUID) (*model.User, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Create(ctx context.Context, input dto.CreateUserInput) (*model.User, error) {
	if err := s.ensureUserUnique(ctx, input); err != nil {
		return nil, err
	}

	user := &model.User{
		Username:    input.Username,
		Email:       input.Email,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		PhoneNumber: input.PhoneNumber,
		Role:        input.Role,
		StudentID:   input.StudentID,
		EmployeeID:  input.EmployeeID,
		Department:  input.Department,
		YearOfStudy: input.YearOfStudy,
		DateOfBirth: input.DateOfBirth,
		Address:     input.Address,
		IsActive:    true,
	}

	// Assign a generated campus ID when the role calls for one and the
	// caller did not supply it. ADMIN users are counted into the EMP
	// sequence but never assigned an employee ID here.
	if user.Role == model.RoleStudent && user.StudentID == nil {
		generated, err := s.generateStudentID(ctx)
		if err != nil {
			return nil, err
		}
		user.StudentID = &generated
	} else if user.Role == model.RoleTeacher && user.EmployeeID == nil {
		generated, err := s.generateEmployeeID(ctx)
		if err != nil {
			return nil, err
		}
		user.EmployeeID = &generated
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// ensureUserUnique runs the creation-time uniqueness checks in a fixed
// order; the first violation wins.
func (s *userService) ensureUserUnique(ctx context.Context, input dto.CreateUserInput) error {
	taken, err := s.repo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return err
	}
	if taken {
		return apperror.Duplicate("username", input.Username)
	}

	taken, err = s.repo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return err
	}
	if taken {
		return apperror.Duplicate("email", input.Email)
	}

	if input.StudentID != nil {
		taken, err = s.repo.ExistsByStudentID(ctx, *input.StudentID)
		if err != nil {
			return err
		}
		if taken {
			return apperror.Duplicate("student_id", *input.StudentID)
		}
	}

	if input.EmployeeID != nil {
		taken, err = s.repo.ExistsByEmployeeID(ctx, *input.EmployeeID)
		if err != nil {
			return err
		}
		if taken {
			return apperror.Duplicate("employee_id", *input.EmployeeID)
		}
	}

	return nil
}

// generateStudentID derives the next student ID from the current
// STUDENT row count. The read-count-then-format sequence is not atomic;
// concurrent creations can collide and the unique index rejects the
// loser on write.
func (s *userService) generateStudentID(ctx context.Context) (string, error) {
	count, err := s.repo.CountByRole(ctx, model.RoleStudent)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("STU%06d", count+1), nil
}

func (s *userService) generateEmployeeID(ctx context.Context) (string, error) {
	teachers, err := s.repo.CountByRole(ctx, model.RoleTeacher)
	if err != nil {
		return "", err
	}
	admins, err := s.repo.CountByRole(ctx, model.RoleAdmin)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("EMP%06d", teachers+admins+1), nil
}

func (s *userService) GetAll(ctx context.Context) ([]*model.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *userService) GetPage(ctx context.Context, filter dto.UserPageFilter) (*dto.PaginatedUserResponse, error) {
	users, total, err := s.repo.FindPage(ctx, filter.Page, filter.Limit)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &dto.PaginatedUserResponse{
		Data: users,
		Meta: dto.PaginationMeta{
			CurrentPage: filter.Page,
			TotalPages:  totalPages,
			TotalItems:  total,
			Limit:       filter.Limit,
		},
	}, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.findUser(ctx, id)
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, notFoundOr(err, "user", username)
	}
	return user, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, notFoundOr(err, "user", email)
	}
	return user, nil
}

func (s *userService) GetByStudentID(ctx context.Context, studentID string) (*model.User, error) {
	user, err := s.repo.FindByStudentID(ctx, studentID)
	if err != nil {
		return nil, notFoundOr(err, "user", studentID)
	}
	return user, nil
}

func (s *userService) GetByRole(ctx context.Context, role model.UserRole) ([]*model.User, error) {
	return s.repo.FindByRole(ctx, role)
}

func (s *userService) GetByDepartment(ctx context.Context, department string) ([]*model.User, error) {
	return s.repo.FindByDepartment(ctx, department)
}

func (s *userService) GetByRoleAndDepartment(ctx context.Context, role model.UserRole, department string) ([]*model.User, error) {
	return s.repo.FindByRoleAndDepartment(ctx, role, department)
}

func (s *userService) GetByActive(ctx context.Context, isActive bool) ([]*model.User, error) {
	return s.repo.FindByActive(ctx, isActive)
}

func (s *userService) GetActiveByRole(ctx context.Context, role model.UserRole) ([]*model.User, error) {
	return s.repo.FindActiveByRole(ctx, role)
}

func (s *userService) GetActiveByDepartment(ctx context.Context, department string) ([]*model.User, error) {
	return s.repo.FindActiveByDepartment(ctx, department)
}

func (s *userService) Search(ctx context.Context, term string) ([]*model.User, error) {
	return s.repo.Search(ctx, term)
}

// Update overwrites only the non-nil fields of the input. Email
// uniqueness is not re-checked here; the unique index is the only
// guard on this path.
func (s *userService) Update(ctx context.Context, id uuid.UUID, input dto.UpdateUserInput) (*model.User, error) {
	user, err := s.findUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.PhoneNumber != nil {
		user.PhoneNumber = input.PhoneNumber
	}
	if input.Department != nil {
		user.Department = input.Department
	}
	if input.YearOfStudy != nil {
		user.YearOfStudy = input.YearOfStudy
	}
	if input.DateOfBirth != nil {
		user.DateOfBirth = input.DateOfBirth
	}
	if input.Address != nil {
		user.Address = input.Address
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	user.UpdatedAt = time.Now()
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findUser(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *userService) Activate(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.setActive(ctx, id, true)
}

func (s *userService) Deactivate(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.setActive(ctx, id, false)
}

func (s *userService) setActive(ctx context.Context, id uuid.UUID, active bool) (*model.User, error) {
	user, err := s.findUser(ctx, id)
	if err != nil {
		return nil, err
	}

	user.IsActive = active
	user.UpdatedAt = time.Now()
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) findUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "user", id.String())
	}
	return user, nil
}
